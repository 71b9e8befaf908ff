package audit

import "fmt"

// LoginEvent records an OpenID login attempt.
type LoginEvent struct {
	SteamID      string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("steam account %s successfully authenticated", e.SteamID)
	}
	msg := "steam login failed"
	if e.SteamID != "" {
		msg = fmt.Sprintf("steam account %s failed to authenticate", e.SteamID)
	}
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"steam_id": e.SteamID,
			"success":  fmt.Sprintf("%t", e.Success),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}

// ContributionEvent records a position submission.
type ContributionEvent struct {
	Resource     string
	IdentityHash string
	X            float64
	Y            float64
	Success      bool
	ErrorKind    string
}

func (e ContributionEvent) MessageID() string {
	return "contribute"
}

func (e ContributionEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("position added for %s at (%f, %f)", e.Resource, e.X, e.Y)
	}
	return fmt.Sprintf("position rejected for %s: %s", e.Resource, e.ErrorKind)
}

func (e ContributionEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityNotice
}

func (e ContributionEvent) Facility() int {
	return FacilityAuth
}

func (e ContributionEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"resource": e.Resource,
		},
		SDIDClient: {
			"identity": e.IdentityHash,
		},
	}
}

// ReportEvent records a removal report and the consensus decision.
type ReportEvent struct {
	Resource     string
	PositionID   int64
	ReporterHash string
	Deleted      bool
	AdminAction  bool
}

func (e ReportEvent) MessageID() string {
	return "report"
}

func (e ReportEvent) Message() string {
	switch {
	case e.Deleted && e.AdminAction:
		return fmt.Sprintf("position %d of %s deleted by admin override", e.PositionID, e.Resource)
	case e.Deleted:
		return fmt.Sprintf("position %d of %s deleted by removal quorum", e.PositionID, e.Resource)
	default:
		return fmt.Sprintf("removal report recorded against position %d of %s", e.PositionID, e.Resource)
	}
}

func (e ReportEvent) Severity() Severity {
	if e.Deleted {
		return SeverityNotice
	}
	return SeverityInfo
}

func (e ReportEvent) Facility() int {
	return FacilityAuth
}

func (e ReportEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"resource": e.Resource,
			"position": fmt.Sprintf("%d", e.PositionID),
		},
		SDIDAction: {
			"deleted": fmt.Sprintf("%t", e.Deleted),
			"admin":   fmt.Sprintf("%t", e.AdminAction),
		},
		SDIDClient: {
			"identity": e.ReporterHash,
		},
	}
}

// BlockedEvent records a request rejected because its identity is blocked.
type BlockedEvent struct {
	IdentityHash string
	Action       string
}

func (e BlockedEvent) MessageID() string {
	return "blocked"
}

func (e BlockedEvent) Message() string {
	return fmt.Sprintf("blocked identity attempted %s", e.Action)
}

func (e BlockedEvent) Severity() Severity {
	return SeverityWarning
}

func (e BlockedEvent) Facility() int {
	return FacilityAuthPriv
}

func (e BlockedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAction: {
			"action": e.Action,
		},
		SDIDClient: {
			"identity": e.IdentityHash,
		},
	}
}
