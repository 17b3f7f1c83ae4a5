package entity

// Derived, point-in-time aggregates. Nothing here is persisted; every admin
// query recomputes from the lead and activity stores, so the numbers can
// never drift from what listing and grouping by hand would return.

type LeadAnalytics struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// ServiceCount is one row of a per-service count query (lead rows or
// service_view activities, depending on which store produced it).
type ServiceCount struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
}

// ServiceMetric tracks interest volume per service. Leads counts every lead
// row regardless of status: a cancelled lead still measured demand.
type ServiceMetric struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Views       int    `json:"views"`
	Leads       int    `json:"leads"`
}
