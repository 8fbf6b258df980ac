package trip

import (
	"encoding/json"
	"math"
)

// StatusNeedMoreInfo is the status value the planning service uses when the
// request is incomplete or out of range.
const StatusNeedMoreInfo = "need_more_info"

// PlanRequest is the body of POST /api/plan.
type PlanRequest struct {
	Destination string   `json:"destination" yaml:"destination"`
	Days        int      `json:"days" yaml:"days"`
	Travelers   int      `json:"travelers" yaml:"travelers"`
	BudgetCNY   float64  `json:"budget_cny" yaml:"budget_cny"`
	Preferences []string `json:"preferences" yaml:"preferences"`
}

// MarshalJSON encodes a non-finite budget as null and never emits a null
// preferences list.
func (r PlanRequest) MarshalJSON() ([]byte, error) {
	var budget *float64
	if !math.IsNaN(r.BudgetCNY) && !math.IsInf(r.BudgetCNY, 0) {
		budget = &r.BudgetCNY
	}
	prefs := r.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	return json.Marshal(struct {
		Destination string   `json:"destination"`
		Days        int      `json:"days"`
		Travelers   int      `json:"travelers"`
		BudgetCNY   *float64 `json:"budget_cny"`
		Preferences []string `json:"preferences"`
	}{r.Destination, r.Days, r.Travelers, budget, prefs})
}

// Response is a decoded /api/plan payload: either NeedsInfo or PlanResult.
type Response interface {
	isResponse()
}

// NeedsInfo is returned when the service needs the operator to fix the request.
type NeedsInfo struct {
	Status        string   `json:"status" mapstructure:"status" yaml:"status"`
	MissingFields []string `json:"missing_fields" mapstructure:"missing_fields" yaml:"missing_fields"`
	Message       string   `json:"message,omitempty" mapstructure:"message" yaml:"message,omitempty"`
}

func (NeedsInfo) isResponse() {}

// PlanResult is a generated travel plan.
type PlanResult struct {
	Status         string         `json:"status,omitempty" mapstructure:"status" yaml:"status,omitempty"`
	Provider       string         `json:"provider,omitempty" mapstructure:"provider" yaml:"provider,omitempty"`
	RequestSummary RequestSummary `json:"request_summary" mapstructure:"request_summary" yaml:"request_summary"`
	Itinerary      []DayPlan      `json:"itinerary" mapstructure:"itinerary" yaml:"itinerary"`
	PriceBreakdown PriceBreakdown `json:"price_breakdown" mapstructure:"price_breakdown" yaml:"price_breakdown"`
	RiskFlags      []string       `json:"risk_flags" mapstructure:"risk_flags" yaml:"risk_flags"`
	HandoffToHuman bool           `json:"handoff_to_human" mapstructure:"handoff_to_human" yaml:"handoff_to_human"`
}

func (PlanResult) isResponse() {}

// WithinBudget reports whether the estimated total fits the requested budget.
func (p PlanResult) WithinBudget() bool {
	return p.PriceBreakdown.Total <= p.RequestSummary.BudgetCNY
}

// RequestSummary echoes the request as the service understood it.
type RequestSummary struct {
	Destination string   `json:"destination" mapstructure:"destination" yaml:"destination"`
	Days        int      `json:"days" mapstructure:"days" yaml:"days"`
	Travelers   int      `json:"travelers" mapstructure:"travelers" yaml:"travelers"`
	BudgetCNY   float64  `json:"budget_cny" mapstructure:"budget_cny" yaml:"budget_cny"`
	Preferences []string `json:"preferences" mapstructure:"preferences" yaml:"preferences"`
}

// PriceBreakdown is the cost estimate. Only Total is guaranteed; the other
// lines are zero when the service omits them.
type PriceBreakdown struct {
	Transport  float64 `json:"transport,omitempty" mapstructure:"transport" yaml:"transport,omitempty"`
	Hotel      float64 `json:"hotel,omitempty" mapstructure:"hotel" yaml:"hotel,omitempty"`
	Tickets    float64 `json:"tickets,omitempty" mapstructure:"tickets" yaml:"tickets,omitempty"`
	Meals      float64 `json:"meals,omitempty" mapstructure:"meals" yaml:"meals,omitempty"`
	ServiceFee float64 `json:"service_fee,omitempty" mapstructure:"service_fee" yaml:"service_fee,omitempty"`
	Total      float64 `json:"total" mapstructure:"total" yaml:"total"`
}

// DayPlan is one itinerary entry. Day is 1-based.
type DayPlan struct {
	Day       int    `json:"day" mapstructure:"day" yaml:"day"`
	Morning   string `json:"morning" mapstructure:"morning" yaml:"morning"`
	Afternoon string `json:"afternoon" mapstructure:"afternoon" yaml:"afternoon"`
	Evening   string `json:"evening" mapstructure:"evening" yaml:"evening"`
}
