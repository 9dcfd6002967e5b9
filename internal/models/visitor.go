package models

import "time"

// Visitor is keyed by the client network address; the address is the
// document's natural primary key, not a generated identifier.
type Visitor struct {
	IP             string     `json:"ip" bson:"_id"`
	Browser        string     `json:"browser" bson:"browser"`
	Device         string     `json:"device" bson:"device"`
	OS             string     `json:"os" bson:"os"`
	Path           string     `json:"path" bson:"path"`
	FirstVisit     time.Time  `json:"firstVisit" bson:"firstVisit"`
	LastVisit      time.Time  `json:"lastVisit" bson:"lastVisit"`
	VisitCount     int64      `json:"visitCount" bson:"visitCount"`
	TotalTimeSpent int64      `json:"totalTimeSpent" bson:"totalTimeSpent"`
	SessionStart   *time.Time `json:"sessionStart,omitempty" bson:"sessionStart,omitempty"`
}

// VisitorHit is one qualifying page hit, ready to be folded into the
// visitor document.
type VisitorHit struct {
	IP      string
	Browser string
	Device  string
	OS      string
	Path    string
	At      time.Time
}

type EndSessionRequest struct {
	SessionID string   `json:"sessionId"`
	TimeSpent *float64 `json:"timeSpent"`
}
