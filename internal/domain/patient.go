package domain

import "strings"

// PatientInfo is the contact and reason data submitted with a booking or waiting-list request.
// Extra keeps any additional keys found in loaded data, and known keys whose value is not
// a scalar, so a load/save round trip is lossless; the engine itself never fills it.
type PatientInfo struct {
	Name      string
	Email     string
	Mobile    string
	Treatment string
	Message   string
	Extra     Extra
}

// MissingFields returns names of required fields that are empty or blank
func (p PatientInfo) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", p.Name},
		{"email", p.Email},
		{"mobile", p.Mobile},
		{"treatment", p.Treatment},
		{"message", p.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// IsEmpty reports whether no field at all is set
func (p PatientInfo) IsEmpty() bool {
	return p.Name == "" && p.Email == "" && p.Mobile == "" &&
		p.Treatment == "" && p.Message == "" && len(p.Extra) == 0
}

// Clone returns a copy that does not share the Extra map
func (p PatientInfo) Clone() PatientInfo {
	out := p
	out.Extra = p.Extra.Clone()
	return out
}

// Redacted masks email and mobile
func (p PatientInfo) Redacted() PatientInfo {
	out := p.Clone()
	out.Email = maskEmail(p.Email)
	out.Mobile = maskTail(p.Mobile, 3)
	return out
}

func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return maskTail(email, 0)
	}
	return email[:1] + strings.Repeat("*", 3) + email[at:]
}

func maskTail(s string, keep int) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) <= keep {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-keep) + string(r[len(r)-keep:])
}
