package reconcile

import (
	"strconv"
	"strings"

	"fuelstation-backend/internal/models"
)

// NormalizeName is the only form in which attendant names are compared:
// trimmed, inner whitespace collapsed, lower-cased.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// AttendantRef is either a resolved attendant id or the raw name that could
// not be matched. Unresolved names are never turned into attendants here.
type AttendantRef struct {
	ID      uint   `json:"id,omitempty"`
	RawName string `json:"raw_name"`
}

func Resolved(id uint, name string) AttendantRef {
	return AttendantRef{ID: id, RawName: name}
}

func Unresolved(name string) AttendantRef {
	return AttendantRef{RawName: strings.TrimSpace(name)}
}

func (r AttendantRef) IsResolved() bool {
	return r.ID != 0
}

// ResolveAttendant looks up name among the attendants of branchID using a
// case-insensitive exact comparison. A typo therefore yields Unresolved.
func ResolveAttendant(attendants []models.Attendant, branchID uint, name string) AttendantRef {
	want := NormalizeName(name)
	if want == "" {
		return Unresolved(name)
	}
	for _, a := range attendants {
		if a.BranchID == branchID && NormalizeName(a.Name) == want {
			return Resolved(a.ID, a.Name)
		}
	}
	return Unresolved(name)
}

// ResolveBranch matches a token against branch ids and names, ignoring case.
func ResolveBranch(branches []models.Branch, token string) (models.Branch, error) {
	t := strings.TrimSpace(token)
	if t == "" {
		return models.Branch{}, &ResolutionError{Kind: KindBranch, Token: token}
	}
	for _, b := range branches {
		if strconv.FormatUint(uint64(b.ID), 10) == t {
			return b, nil
		}
	}
	want := NormalizeName(t)
	for _, b := range branches {
		if NormalizeName(b.Name) == want {
			return b, nil
		}
	}
	return models.Branch{}, &ResolutionError{Kind: KindBranch, Token: token}
}
