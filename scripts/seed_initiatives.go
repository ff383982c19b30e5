// seed_initiatives.go parses a markdown score table and loads it into a dashboard session.
//
// The table needs an Initiative column followed by Impact, Cost, Feasibility and
// Time_to_Benefit columns, in any order:
//
//	| Initiative | Impact | Cost | Feasibility | Time_to_Benefit |
//	|---|---|---|---|---|
//	| Targeted Network Rehabilitation | 5 | 3 | 3 | 4 |
//
// Usage:
//
//	go run scripts/seed_initiatives.go -table initiatives.md -api http://localhost:8700
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

type initiative struct {
	Name          string `json:"name"`
	Impact        *int   `json:"impact"`
	Cost          *int   `json:"cost"`
	Feasibility   *int   `json:"feasibility"`
	TimeToBenefit *int   `json:"time_to_benefit"`
}

// columnAliases maps normalized header text to a score field.
var columnAliases = map[string]string{
	"initiative":      "name",
	"name":            "name",
	"impact":          "impact",
	"cost":            "cost",
	"feasibility":     "feasibility",
	"time_to_benefit": "time_to_benefit",
	"time-to-benefit": "time_to_benefit",
	"time to benefit": "time_to_benefit",
}

func main() {
	tablePath := flag.String("table", "initiatives.md", "path to markdown file with a score table")
	apiURL := flag.String("api", "http://localhost:8700", "dashboard API base URL")
	sessionID := flag.String("session", "", "existing session id; a new session is created when empty")
	dryRun := flag.Bool("dry-run", false, "print rows without posting")
	flag.Parse()

	f, err := os.Open(*tablePath)
	if err != nil {
		log.Fatalf("open %s: %v", *tablePath, err)
	}
	defer f.Close()

	var (
		items   []initiative
		columns []string
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "|") {
			// a table ends at the first non-table line
			if columns != nil && len(items) > 0 {
				break
			}
			columns = nil
			continue
		}
		cells := splitRow(line)

		if columns == nil {
			columns = headerColumns(cells)
			continue
		}
		if isSeparator(cells) {
			continue
		}
		item, err := parseRow(columns, cells)
		if err != nil {
			log.Printf("skip row %q: %v", line, err)
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("scan %s: %v", *tablePath, err)
	}

	log.Printf("parsed %d initiatives from %s", len(items), *tablePath)

	if *dryRun {
		for i, it := range items {
			fmt.Printf("[%d] %s (impact=%s, cost=%s, feasibility=%s, time_to_benefit=%s)\n",
				i+1, it.Name, show(it.Impact), show(it.Cost), show(it.Feasibility), show(it.TimeToBenefit))
		}
		return
	}

	client := &http.Client{}
	id := *sessionID
	if id == "" {
		id, err = createSession(client, *apiURL)
		if err != nil {
			log.Fatalf("create session: %v", err)
		}
		log.Printf("created session %s", id)
	}

	body, _ := json.Marshal(items)
	req, err := http.NewRequest("PUT", *apiURL+"/api/v1/sessions/"+id+"/initiatives", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", id)

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("put initiatives: %v", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		log.Printf("done: %d initiatives loaded into session %s", len(items), id)
	case http.StatusUnprocessableEntity:
		var e struct {
			Error string `json:"error"`
			Kind  string `json:"kind"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		log.Fatalf("table stored but not ranked (%s): %s", e.Kind, e.Error)
	default:
		log.Fatalf("put initiatives: status %d", resp.StatusCode)
	}
}

func createSession(client *http.Client, apiURL string) (string, error) {
	resp, err := client.Post(apiURL+"/api/v1/sessions", "application/json", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	var s struct {
		ID string `json:"session_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func splitRow(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func headerColumns(cells []string) []string {
	cols := make([]string, len(cells))
	for i, c := range cells {
		key := strings.ToLower(strings.Trim(c, "* "))
		cols[i] = columnAliases[key]
	}
	return cols
}

func isSeparator(cells []string) bool {
	for _, c := range cells {
		if strings.Trim(c, ":- ") != "" {
			return false
		}
	}
	return true
}

// parseRow reads one table row. Blank score cells stay nil so the dashboard
// reports them as missing.
func parseRow(columns, cells []string) (initiative, error) {
	var it initiative
	for i, col := range columns {
		if col == "" || i >= len(cells) {
			continue
		}
		if col == "name" {
			it.Name = cells[i]
			continue
		}
		if cells[i] == "" {
			continue
		}
		v, err := strconv.Atoi(cells[i])
		if err != nil {
			return it, fmt.Errorf("%s: %q is not an integer", col, cells[i])
		}
		switch col {
		case "impact":
			it.Impact = &v
		case "cost":
			it.Cost = &v
		case "feasibility":
			it.Feasibility = &v
		case "time_to_benefit":
			it.TimeToBenefit = &v
		}
	}
	if it.Name == "" {
		return it, fmt.Errorf("no initiative name")
	}
	return it, nil
}

func show(v *int) string {
	if v == nil {
		return "missing"
	}
	return strconv.Itoa(*v)
}
