// Package csvmap guesses which columns of a contact CSV export carry which
// semantic role. Scoring is pure: headers and sample rows in, a score table
// and a best mapping out. Nothing is guessed at random; a role with no
// plausible column stays unmapped.
package csvmap

import (
	"sort"
	"strings"
	"unicode"
)

// Role is a semantic column role in a contact export.
type Role string

const (
	RolePhone      Role = "phone"
	RoleName       Role = "name"
	RoleEmail      Role = "email"
	RoleCompany    Role = "company"
	RoleExternalID Role = "external_id"
)

// Roles lists every role in scoring order.
var Roles = []Role{RolePhone, RoleName, RoleEmail, RoleCompany, RoleExternalID}

// vocab maps each role to the header tokens seen in the wild (Zoho, HubSpot,
// Google Contacts exports). Tokens are matched against normalized headers.
var vocab = map[Role][]string{
	RolePhone:      {"phone", "mobile", "cell", "telephone", "tel", "number", "phone number", "mobile number", "work phone", "home phone"},
	RoleName:       {"name", "full name", "contact name", "first name", "last name", "display name"},
	RoleEmail:      {"email", "e mail", "mail", "email address"},
	RoleCompany:    {"company", "organization", "organisation", "account name", "employer"},
	RoleExternalID: {"record id", "contact id", "lead id", "external id", "id", "zoho id", "crm id"},
}

const (
	scoreExact     = 1.0
	scoreWord      = 0.75
	scoreSubstring = 0.5
	shapeBonus     = 0.5
	// mapThreshold is the minimum score a column needs to be suggested for a role.
	mapThreshold = 0.5
)

// Score is one cell of the score table.
type Score struct {
	Role   Role    `json:"role"`
	Header string  `json:"header"`
	Value  float64 `json:"value"`
}

// Suggestion is the mapper output: the winning header per role plus the full
// score table for transparency.
type Suggestion struct {
	Mapping map[Role]string `json:"mapping"`
	Scores  []Score         `json:"scores"`
}

// Suggest scores every (role, header) pair and picks the best header per
// role. Ties break toward the leftmost column. rows are sample data rows in
// header order, used for content-shape checks.
func Suggest(headers []string, rows [][]string) Suggestion {
	out := Suggestion{Mapping: make(map[Role]string)}

	for _, role := range Roles {
		bestIdx := -1
		bestScore := 0.0
		for i, header := range headers {
			value := scoreColumn(role, header, columnSamples(rows, i))
			if value > 0 {
				out.Scores = append(out.Scores, Score{Role: role, Header: header, Value: value})
			}
			if value > bestScore {
				bestScore, bestIdx = value, i
			}
		}
		if bestIdx >= 0 && bestScore >= mapThreshold {
			out.Mapping[role] = headers[bestIdx]
		}
	}

	sort.SliceStable(out.Scores, func(a, b int) bool {
		if out.Scores[a].Role != out.Scores[b].Role {
			return out.Scores[a].Role < out.Scores[b].Role
		}
		return out.Scores[a].Value > out.Scores[b].Value
	})
	return out
}

// scoreColumn combines header-name evidence with content shape. Phone and
// email columns must also look the part: when sample values are present and
// the majority fails the shape check, the column scores zero outright.
func scoreColumn(role Role, header string, samples []string) float64 {
	name := nameScore(role, normalizeHeader(header))

	switch role {
	case RolePhone:
		return gateAndBoost(name, samples, phoneShaped)
	case RoleEmail:
		return gateAndBoost(name, samples, emailShaped)
	default:
		return name
	}
}

func gateAndBoost(name float64, samples []string, shaped func(string) bool) float64 {
	if len(samples) == 0 {
		return name
	}
	pass := 0
	for _, v := range samples {
		if shaped(v) {
			pass++
		}
	}
	if pass*2 <= len(samples) {
		return 0
	}
	if name == 0 {
		return 0
	}
	return name + shapeBonus
}

func nameScore(role Role, header string) float64 {
	if header == "" {
		return 0
	}
	best := 0.0
	for _, token := range vocab[role] {
		switch {
		case header == token:
			return scoreExact
		case containsWord(header, token):
			best = max(best, scoreWord)
		case len(token) >= 4 && strings.Contains(header, token):
			best = max(best, scoreSubstring)
		}
	}
	return best
}

// normalizeHeader lowercases and collapses separators so "Phone_Number",
// "phone-number" and "Phone Number" all read the same.
func normalizeHeader(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func containsWord(header, token string) bool {
	from := 0
	for {
		i := strings.Index(header[from:], token)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(token)
		startOK := start == 0 || header[start-1] == ' '
		endOK := end == len(header) || header[end] == ' '
		if startOK && endOK {
			return true
		}
		from = start + 1
	}
}

func columnSamples(rows [][]string, col int) []string {
	var out []string
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[col]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func phoneShaped(v string) bool {
	digits := 0
	for _, r := range v {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 7
}

func emailShaped(v string) bool {
	return strings.Contains(v, "@")
}
