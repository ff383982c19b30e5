package roadmap

// monthOffsets are the phase boundaries in months after the anchor date.
var monthOffsets = [...]int{0, 3, 9, 18}

// phaseTemplates returns the static phase content. Start and End are left
// zero and filled in by BuildPhases. A fresh copy is returned on every call.
func phaseTemplates() []Phase {
	return []Phase{
		{
			ID:   "Phase 1 (Months 0–3)",
			Name: "Diagnostics & Mobilization",
			Explanation: "Rapid asset & institutional diagnosis for priority municipalities (Aguascalientes, " +
				"Tequisquiapan, Zapotitlán de Méndez). Formalize governance, validate network maps, " +
				"and secure preliminary budgets to enable Phase 2.",
			Milestones: []string{
				"Formalize a governance & project committee",
				"Detailed technical inspections & asset validation (km validated)",
				"GIS update and asset register approval",
				"Approve preliminary intervention budgets",
			},
			LeadActors: []string{
				"Municipal Water Utility (OOAPAS)",
				"State Water Commission (CEA)",
				"Municipal Public Works & Planning",
			},
			Monitoring: []Indicator{
				{Name: "% assets inspected", Target: "target ≥ 80%"},
				{Name: "Validated km (baseline)", Target: "record km per utility"},
				{Name: "Baseline best-practice probability", Target: "Aguascalientes: 0.0001, Tequisquiapan: 0.1182, " +
					"Zapotitlán de Méndez: 0.4953, Naucalpan: 0.9642"},
			},
			Budget: []BudgetLine{
				{Item: "surveys & inspections", Amount: "MXN 0.8M–1.6M"},
				{Item: "GIS & asset register updates", Amount: "MXN 0.4M–0.8M"},
				{Item: "mobilization / short-term staffing", Amount: "MXN 0.3M–0.6M"},
				{Item: PhaseTotalKey, Amount: "MXN 1.5M–3.0M"},
			},
			Contingencies: []string{
				"If inspection capacity limited >>> hire short-term field contractors or academic partners.",
				"If municipal approval delayed >>> apply conditional state matching funds or re-scope lowest-cost diagnostic.",
			},
		},
		{
			ID:   "Phase 2 (Months 3–9)",
			Name: "Implementation — Priority Interventions",
			Explanation: "Targeted network rehabilitation, staff reinforcement and metering plus selective pluvial works. " +
				"Focus on municipalities with large feasible gains and low best-practice probability (Tequisquiapan, Aguascalientes).",
			Milestones: []string{
				"Execute targeted conduction & distribution rehabilitation contracts",
				"Recruit / reallocate ~15–20 technicians (+1 SD) and deploy operational kits",
				"Deploy selective pluvial drainage works to increase coverage by ~10 pp where feasible",
				"Meter procurement & rollout (1,000–5,000 units) and cost-recovery pilot",
			},
			LeadActors: []string{
				"Utility Technical Division",
				"Private civil works & meter-installation contractors",
				"State Water Commission (financing support)",
			},
			Monitoring: []Indicator{
				{Name: "Km rehabilitated (conduction)", Target: "monthly cumulative"},
				{Name: "Km rehabilitated (distribution)", Target: "monthly cumulative"},
				{Name: "Meters installed", Target: "cumulative"},
				{Name: "Pluvial coverage %", Target: "measured at 3-month intervals"},
				{Name: "Updated best-practice probability", Target: "recompute at month 6"},
			},
			Budget: []BudgetLine{
				{Item: "network_rehab_conduction", Amount: "MXN 1M–6M (example: 3–40 km @ MXN150k/km)"},
				{Item: "network_rehab_distribution", Amount: "MXN 2M–14M (example: 20–140 km @ MXN100k/km)"},
				{Item: "pluvial_works", Amount: "MXN 3M–12M (scale dependent @ MXN100k–150k/km)"},
				{Item: "metering_program", Amount: "MXN 1M–6M (1k–5k meters @ MXN500–1,200 each)"},
				{Item: "staffing & training", Amount: "MXN 0.2M–1.0M"},
				{Item: PhaseTotalKey, Amount: "MXN 9M–38M"},
			},
			Contingencies: []string{
				"If budgets short >>> prioritize interventions delivering highest km per MXN (VfM) and pilot in highest-probability municipalities.",
				"If contractor shortage >>> use inter-municipal technical brigades or temporary outsourcing to certified firms.",
			},
		},
		{
			ID:   "Phase 3 (Months 9–18)",
			Name: "Institutionalization & Scaling",
			Explanation: "Embed monitoring, SOPs and budget lines to maintain rehabilitation gains. " +
				"Scale successful pilots and integrate staffing and metering into recurrent budgets.",
			Milestones: []string{
				"Standardize monitoring dashboards (NRW, meters per connection, km rehab)",
				"Publish operational manuals and O&M schedules",
				"Sign peer-learning agreements and scale funding allocations",
			},
			LeadActors: []string{
				"State Water Secretariat",
				"Municipal utilities",
				"Training & certification centers",
			},
			Monitoring: []Indicator{
				{Name: "NRW reduction", Target: "annual % change"},
				{Name: "% metered connections", Target: "annual"},
				{Name: "Annual km rehabilitated", Target: "annual"},
				{Name: "Sustained best-practice probability", Target: "annual re-evaluation"},
			},
			Budget: []BudgetLine{
				{Item: "dashboard & IT systems", Amount: "MXN 0.5M–1.5M"},
				{Item: "training & institutionalization", Amount: "MXN 0.5M–2.0M"},
				{Item: "scaling pilot interventions", Amount: "MXN 1M–2.5M"},
				{Item: PhaseTotalKey, Amount: "MXN 2M–6M"},
			},
			Contingencies: []string{
				"If political turnover threatens continuity >>> embed actions in municipal POA and state-level agreements and publish dashboards for transparency.",
				"If recurrent funds missing >>> secure multi-year commitments or ringfence metering-derived revenues to finance operations.",
			},
		},
	}
}
