package responses

type MonthlyChargeRun struct {
	Eligible int      `json:"eligible"`
	Created  int      `json:"created"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}
