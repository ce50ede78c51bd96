package model

import "time"

// TopSite is one entry in the per-domain ranking of a report.
type TopSite struct {
	Domain    string   `json:"domain"`
	TimeSpent int64    `json:"timeSpent"`
	Category  Category `json:"category"`
}

// DailyBreakdown is one day's totals within a report window.
type DailyBreakdown struct {
	Date           time.Time `json:"date"`
	TotalTime      int64     `json:"totalTime"`
	ProductiveTime int64     `json:"productiveTime"`
}

// ProductivityReport is a derived view computed fresh on every analytics
// request. It is never persisted or cached.
type ProductivityReport struct {
	UserID           string           `json:"userId"`
	Period           string           `json:"period"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          time.Time        `json:"endDate"`
	TotalTime        int64            `json:"totalTime"`
	ProductiveTime   int64            `json:"productiveTime"`
	UnproductiveTime int64            `json:"unproductiveTime"`
	NeutralTime      int64            `json:"neutralTime"`
	TopSites         []TopSite        `json:"topSites"`
	DailyBreakdown   []DailyBreakdown `json:"dailyBreakdown"`
}
