// Package stubservice is a deterministic, in-process stand-in for the remote
// planning service. It serves the same two routes with the same payload shapes
// so the client can be exercised without the real backend.
package stubservice

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Iron-Ham/tripplan/internal/trip"
)

// ServiceName is reported by the health route.
const ServiceName = "travel-saas-mvp"

// Provider is reported on every generated plan.
const Provider = "local"

// NeedMoreInfoMessage accompanies every need_more_info answer.
const NeedMoreInfoMessage = "请求信息不完整或不合法，请补充后重试。"

// EveningActivity fills every evening slot.
const EveningActivity = "本地特色美食 + 自由活动"

// Risk flags.
const (
	RiskBudgetExceeded      = "budget_exceeded"
	RiskTightSchedule       = "tight_schedule"
	RiskLargeGroup          = "large_group_manual_review"
	RiskDestinationFallback = "destination_fallback_template"
)

const (
	serviceFeeRate     = 0.08
	handoffBudgetRatio = 1.2
	largeGroupSize     = 8
	fallbackCity       = "北京"
)

// City holds the per-destination pricing and sights.
type City struct {
	Spots                 []string
	TransportPerPerson    int
	HotelPerNight         int
	TicketPerDayPerPerson int
	MealPerDayPerPerson   int
}

// Cities is the destination table. Unknown destinations use 北京.
var Cities = map[string]City{
	"北京": {
		Spots:                 []string{"故宫", "天坛", "颐和园", "南锣鼓巷", "798艺术区"},
		TransportPerPerson:    1200,
		HotelPerNight:         480,
		TicketPerDayPerPerson: 140,
		MealPerDayPerPerson:   180,
	},
	"上海": {
		Spots:                 []string{"外滩", "豫园", "上海博物馆", "武康路", "迪士尼小镇"},
		TransportPerPerson:    1100,
		HotelPerNight:         520,
		TicketPerDayPerPerson: 160,
		MealPerDayPerPerson:   200,
	},
	"成都": {
		Spots:                 []string{"宽窄巷子", "锦里", "杜甫草堂", "大熊猫基地", "都江堰"},
		TransportPerPerson:    1000,
		HotelPerNight:         420,
		TicketPerDayPerPerson: 130,
		MealPerDayPerPerson:   170,
	},
}

// Request bounds accepted by the planning API.
const (
	MaxDays      = 15
	MaxTravelers = 20
)

var requiredFields = []string{"destination", "days", "travelers", "budget_cny"}

// Generate answers one raw plan request. The result is either a
// trip.NeedsInfo listing every violated rule or a trip.PlanResult.
func Generate(raw map[string]any) trip.Response {
	if missing := validate(raw); len(missing) > 0 {
		return trip.NeedsInfo{
			Status:        trip.StatusNeedMoreInfo,
			MissingFields: missing,
			Message:       NeedMoreInfoMessage,
		}
	}

	req := normalize(raw)
	city, known := Cities[req.Destination]
	if !known {
		city = Cities[fallbackCity]
	}

	price := estimatePrice(req, city)
	risks, handoff := evaluateRisk(req, price.Total, known)

	return trip.PlanResult{
		Status:   "ok",
		Provider: Provider,
		RequestSummary: trip.RequestSummary{
			Destination: req.Destination,
			Days:        req.Days,
			Travelers:   req.Travelers,
			BudgetCNY:   req.BudgetCNY,
			Preferences: req.Preferences,
		},
		Itinerary:      buildItinerary(req.Days, city),
		PriceBreakdown: price,
		RiskFlags:      risks,
		HandoffToHuman: handoff,
	}
}

// validate returns absent required keys if there are any, otherwise every
// failed range or type rule in a fixed order.
func validate(raw map[string]any) []string {
	var missing []string
	for _, f := range requiredFields {
		if _, ok := raw[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return missing
	}

	if days, ok := toInt(raw["days"]); !ok {
		missing = append(missing, "days:int")
	} else if days < 1 {
		missing = append(missing, "days>=1")
	} else if days > MaxDays {
		missing = append(missing, fmt.Sprintf("days<=%d", MaxDays))
	}

	if travelers, ok := toInt(raw["travelers"]); !ok {
		missing = append(missing, "travelers:int")
	} else if travelers < 1 {
		missing = append(missing, "travelers>=1")
	} else if travelers > MaxTravelers {
		missing = append(missing, fmt.Sprintf("travelers<=%d", MaxTravelers))
	}

	if budget, ok := toFloat(raw["budget_cny"]); !ok {
		missing = append(missing, "budget_cny:number")
	} else if budget <= 0 {
		missing = append(missing, "budget_cny>0")
	}

	if toString(raw["destination"]) == "" {
		missing = append(missing, "destination:non-empty")
	}
	return missing
}

func normalize(raw map[string]any) trip.PlanRequest {
	days, _ := toInt(raw["days"])
	travelers, _ := toInt(raw["travelers"])
	budget, _ := toFloat(raw["budget_cny"])

	prefs := []string{}
	if list, ok := raw["preferences"].([]any); ok {
		for _, p := range list {
			prefs = append(prefs, fmt.Sprint(p))
		}
	}

	return trip.PlanRequest{
		Destination: toString(raw["destination"]),
		Days:        days,
		Travelers:   travelers,
		BudgetCNY:   budget,
		Preferences: prefs,
	}
}

// buildItinerary walks the city's spots two per day, wrapping around.
func buildItinerary(days int, city City) []trip.DayPlan {
	n := len(city.Spots)
	plans := make([]trip.DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		base := (day - 1) * 2
		plans = append(plans, trip.DayPlan{
			Day:       day,
			Morning:   city.Spots[base%n],
			Afternoon: city.Spots[(base+1)%n],
			Evening:   EveningActivity,
		})
	}
	return plans
}

func estimatePrice(req trip.PlanRequest, city City) trip.PriceBreakdown {
	nights := max(req.Days-1, 1)

	transport := city.TransportPerPerson * req.Travelers
	hotel := city.HotelPerNight * nights
	tickets := city.TicketPerDayPerPerson * req.Days * req.Travelers
	meals := city.MealPerDayPerPerson * req.Days * req.Travelers
	subtotal := transport + hotel + tickets + meals
	fee := math.Ceil(float64(subtotal) * serviceFeeRate)

	return trip.PriceBreakdown{
		Transport:  float64(transport),
		Hotel:      float64(hotel),
		Tickets:    float64(tickets),
		Meals:      float64(meals),
		ServiceFee: fee,
		Total:      float64(subtotal) + fee,
	}
}

func evaluateRisk(req trip.PlanRequest, total float64, knownCity bool) ([]string, bool) {
	risks := []string{}
	handoff := false

	if total > req.BudgetCNY {
		risks = append(risks, RiskBudgetExceeded)
		if total > req.BudgetCNY*handoffBudgetRatio {
			handoff = true
		}
	}
	if req.Days <= 1 {
		risks = append(risks, RiskTightSchedule)
	}
	if req.Travelers >= largeGroupSize {
		risks = append(risks, RiskLargeGroup)
		handoff = true
	}
	if !knownCity {
		risks = append(risks, RiskDestinationFallback)
	}
	return risks, handoff
}

// KnownDestinations lists the destinations with dedicated data.
func KnownDestinations() []string {
	names := make([]string, 0, len(Cities))
	for name := range Cities {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil && !math.IsNaN(f)
	default:
		return 0, false
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}
