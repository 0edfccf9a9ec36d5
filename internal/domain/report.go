package domain

// ResultRecord is the persisted form of one ExecutionResult.
type ResultRecord struct {
	Path   string `json:"path"`
	Status int    `json:"status"`
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
}

// DivergenceRecord is the persisted form of a divergent Verdict.
type DivergenceRecord struct {
	CaseName string         `json:"case_name"`
	Stdin    string         `json:"stdin"`
	Args     []string       `json:"args"`
	Results  []ResultRecord `json:"results"`
}

// CampaignMeta contains metadata about a campaign run.
type CampaignMeta struct {
	Exec1           string  `json:"exec1"`
	Exec2           string  `json:"exec2"`
	CasesRun        int     `json:"cases_run"`
	Equivalent      bool    `json:"equivalent"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// CampaignReport is the complete persisted output of one campaign.
// Divergence is nil when every case was equivalent.
type CampaignReport struct {
	Meta       CampaignMeta      `json:"meta"`
	Divergence *DivergenceRecord `json:"divergence,omitempty"`
}

// NewDivergenceRecord converts a divergent verdict into its persisted form.
func NewDivergenceRecord(v Verdict) *DivergenceRecord {
	return &DivergenceRecord{
		CaseName: v.Case.Name,
		Stdin:    v.Case.Input.Stdin,
		Args:     v.Case.Input.Args,
		Results: []ResultRecord{
			{Path: v.First.Path, Status: v.First.Status, Stdout: v.First.Stdout, Stderr: v.First.Stderr},
			{Path: v.Second.Path, Status: v.Second.Status, Stdout: v.Second.Stdout, Stderr: v.Second.Stderr},
		},
	}
}
