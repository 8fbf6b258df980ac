// Package trip defines the travel-planning request and response model shared by
// the planning client, the submission controller and the renderer.
//
// A [PlanRequest] is built fresh for every submission by [BuildRequest] from the
// raw form [Fields]. Building never fails: numbers are coerced, preferences are
// split and cleaned, and anything the planning service would reject is still
// forwarded so the service remains the only validator.
//
// A [Response] is a closed sum type with exactly two variants, [NeedsInfo] and
// [PlanResult]. Callers discriminate with a type switch:
//
//	switch r := resp.(type) {
//	case trip.NeedsInfo:
//	    // ask the operator for r.MissingFields
//	case trip.PlanResult:
//	    // show r.Itinerary
//	}
package trip
