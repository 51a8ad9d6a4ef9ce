package node

import (
	"strconv"
	"strings"
)

// AsString returns the scalar text, or def when the node is not a scalar.
func (n *Node) AsString(def ...string) string {
	if n.kind != Scalar {
		if len(def) > 0 {
			return def[0]
		}
		return ""
	}
	return n.value
}

// AsInt converts the scalar text to an integer. Non-scalar nodes and failed
// conversions return def (zero when omitted).
func (n *Node) AsInt(def ...int64) int64 {
	var d int64
	if len(def) > 0 {
		d = def[0]
	}
	if n.kind != Scalar {
		return d
	}
	v, err := strconv.ParseInt(strings.TrimSpace(n.value), 10, 64)
	if err != nil {
		return d
	}
	return v
}

// AsFloat converts the scalar text to a float. Non-scalar nodes and failed
// conversions return def (zero when omitted).
func (n *Node) AsFloat(def ...float64) float64 {
	var d float64
	if len(def) > 0 {
		d = def[0]
	}
	if n.kind != Scalar {
		return d
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(n.value), 64)
	if err != nil {
		return d
	}
	return v
}

// AsBool converts the scalar text to a boolean. Accepted spellings are
// true/false and yes/no, case-insensitive. Non-scalar nodes and other
// spellings return def (false when omitted).
func (n *Node) AsBool(def ...bool) bool {
	var d bool
	if len(def) > 0 {
		d = def[0]
	}
	if n.kind != Scalar {
		return d
	}
	switch strings.ToLower(strings.TrimSpace(n.value)) {
	case "true", "yes":
		return true
	case "false", "no":
		return false
	}
	return d
}
