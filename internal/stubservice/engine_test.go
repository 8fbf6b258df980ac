package stubservice

import (
	"reflect"
	"testing"

	"github.com/Iron-Ham/tripplan/internal/trip"
)

func request(dest string, days, travelers, budget float64) map[string]any {
	return map[string]any{
		"destination": dest,
		"days":        days,
		"travelers":   travelers,
		"budget_cny":  budget,
		"preferences": []any{"美食"},
	}
}

func TestGenerate_Validation(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []string
	}{
		{
			name: "missing keys only",
			raw:  map[string]any{"destination": "", "days": 0.0},
			want: []string{"travelers", "budget_cny"},
		},
		{
			name: "range rules",
			raw:  request("", 0, 0, 0),
			want: []string{"days>=1", "travelers>=1", "budget_cny>0", "destination:non-empty"},
		},
		{
			name: "type rules",
			raw:  map[string]any{"destination": "成都", "days": "three", "travelers": nil, "budget_cny": nil},
			want: []string{"days:int", "travelers:int", "budget_cny:number"},
		},
		{
			name: "upper bounds",
			raw:  request("成都", 16, 21, 4000),
			want: []string{"days<=15", "travelers<=20"},
		},
		{
			name: "huge day count",
			raw:  request("成都", 1e18, 2, 4000),
			want: []string{"days<=15"},
		},
		{
			name: "negative budget",
			raw:  request("成都", 2, 2, -1),
			want: []string{"budget_cny>0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Generate(tt.raw)
			info, ok := resp.(trip.NeedsInfo)
			if !ok {
				t.Fatalf("Generate() = %T, want trip.NeedsInfo", resp)
			}
			if info.Status != trip.StatusNeedMoreInfo {
				t.Errorf("Status = %q, want %q", info.Status, trip.StatusNeedMoreInfo)
			}
			if !reflect.DeepEqual(info.MissingFields, tt.want) {
				t.Errorf("MissingFields = %v, want %v", info.MissingFields, tt.want)
			}
			if info.Message != NeedMoreInfoMessage {
				t.Errorf("Message = %q, want %q", info.Message, NeedMoreInfoMessage)
			}
		})
	}
}

func TestGenerate_Bounds(t *testing.T) {
	plan, ok := Generate(request("上海", MaxDays, MaxTravelers, 1000000)).(trip.PlanResult)
	if !ok {
		t.Fatal("a request at the upper bounds should be planned")
	}
	if len(plan.Itinerary) != MaxDays {
		t.Errorf("itinerary has %d days, want %d", len(plan.Itinerary), MaxDays)
	}
}

func TestGenerate_Plan(t *testing.T) {
	resp := Generate(request("成都", 3, 2, 8000))
	plan, ok := resp.(trip.PlanResult)
	if !ok {
		t.Fatalf("Generate() = %T, want trip.PlanResult", resp)
	}

	// transport 1000*2, hotel 420*2 nights, tickets 130*3*2, meals 170*3*2
	want := trip.PriceBreakdown{
		Transport:  2000,
		Hotel:      840,
		Tickets:    780,
		Meals:      1020,
		ServiceFee: 372, // ceil(4640 * 0.08) = ceil(371.2)
		Total:      5012,
	}
	if plan.PriceBreakdown != want {
		t.Errorf("PriceBreakdown = %+v, want %+v", plan.PriceBreakdown, want)
	}
	if plan.Provider != Provider || plan.Status != "ok" {
		t.Errorf("Provider/Status = %q/%q, want %q/ok", plan.Provider, plan.Status, Provider)
	}
	if len(plan.RiskFlags) != 0 || plan.HandoffToHuman {
		t.Errorf("RiskFlags = %v handoff = %v, want none", plan.RiskFlags, plan.HandoffToHuman)
	}

	wantDays := []trip.DayPlan{
		{Day: 1, Morning: "宽窄巷子", Afternoon: "锦里", Evening: EveningActivity},
		{Day: 2, Morning: "杜甫草堂", Afternoon: "大熊猫基地", Evening: EveningActivity},
		{Day: 3, Morning: "都江堰", Afternoon: "宽窄巷子", Evening: EveningActivity},
	}
	if !reflect.DeepEqual(plan.Itinerary, wantDays) {
		t.Errorf("Itinerary = %+v, want %+v", plan.Itinerary, wantDays)
	}
	if !reflect.DeepEqual(plan.RequestSummary.Preferences, []string{"美食"}) {
		t.Errorf("Preferences = %v, want [美食]", plan.RequestSummary.Preferences)
	}
}

func TestGenerate_Risks(t *testing.T) {
	tests := []struct {
		name        string
		raw         map[string]any
		wantRisks   []string
		wantHandoff bool
	}{
		{
			name:        "slightly over budget",
			raw:         request("成都", 3, 2, 4500),
			wantRisks:   []string{RiskBudgetExceeded},
			wantHandoff: false,
		},
		{
			name:        "far over budget",
			raw:         request("成都", 3, 2, 1000),
			wantRisks:   []string{RiskBudgetExceeded},
			wantHandoff: true,
		},
		{
			name:      "one day trip",
			raw:       request("上海", 1, 1, 100000),
			wantRisks: []string{RiskTightSchedule},
		},
		{
			name:        "large group",
			raw:         request("北京", 3, 8, 1000000),
			wantRisks:   []string{RiskLargeGroup},
			wantHandoff: true,
		},
		{
			name:      "unknown destination",
			raw:       request("Tokyo", 3, 2, 1000000),
			wantRisks: []string{RiskDestinationFallback},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, ok := Generate(tt.raw).(trip.PlanResult)
			if !ok {
				t.Fatal("expected a plan")
			}
			if !reflect.DeepEqual(plan.RiskFlags, tt.wantRisks) {
				t.Errorf("RiskFlags = %v, want %v", plan.RiskFlags, tt.wantRisks)
			}
			if plan.HandoffToHuman != tt.wantHandoff {
				t.Errorf("HandoffToHuman = %v, want %v", plan.HandoffToHuman, tt.wantHandoff)
			}
		})
	}
}

func TestGenerate_FallbackItinerary(t *testing.T) {
	plan := Generate(request("Tokyo", 1, 1, 100000)).(trip.PlanResult)
	if plan.Itinerary[0].Morning != "故宫" {
		t.Errorf("Morning = %q, want fallback city spot 故宫", plan.Itinerary[0].Morning)
	}
	if plan.RequestSummary.Destination != "Tokyo" {
		t.Errorf("Destination = %q, want the requested name", plan.RequestSummary.Destination)
	}
}

func TestKnownDestinations(t *testing.T) {
	got := KnownDestinations()
	if len(got) != 3 {
		t.Errorf("KnownDestinations() = %v, want 3 entries", got)
	}
}
