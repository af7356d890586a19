package resolve

import (
	"github.com/hostwire/hostwire/domain/model"
)

// DecideZone determines which hosted zone the run operates on.
//
// The precedence is deliberate and must be preserved: an explicit zone id
// beats a zone name when both are supplied, which resolves the ambiguity of
// "both selectors given" without guessing. CreateZone beats both because the
// caller explicitly asked for a new zone. External mode never touches a
// provider zone; the namespace is operator-managed.
func DecideZone(state *model.DesiredState) model.ZoneDecision {
	if !state.FeatureEnabled {
		return model.ZoneDecision{Kind: model.ZoneNone}
	}
	if state.DNSProvider == model.DNSProviderExternal {
		return model.ZoneDecision{Kind: model.ZoneNone}
	}
	if state.CreateZone {
		return model.ZoneDecision{Kind: model.ZoneCreateNew, Name: state.ZoneName}
	}
	if state.ZoneID != "" {
		return model.ZoneDecision{Kind: model.ZoneUseByID, ID: state.ZoneID}
	}
	return model.ZoneDecision{Kind: model.ZoneUseByName, Name: state.ZoneName}
}
