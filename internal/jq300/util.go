package jq300

import "strings"

// Mask hides the middle of text with asterisks, keeping the first and last
// characters. Text shorter than first+last is fully masked.
func Mask(text string, first, last int) string {
	tlen := len(text)
	if tlen <= first+last {
		return strings.Repeat("*", tlen)
	}
	return text[:first] + strings.Repeat("*", tlen-first-last) + text[tlen-last:]
}

// MaskEmail masks the local part and the domain name of an email address,
// keeping the TLD readable. Used for account names in log output.
func MaskEmail(email string) string {
	local, domain, _ := strings.Cut(email, "@")
	parts := strings.Split(domain, ".")
	dname := strings.Join(parts[:len(parts)-1], ".")
	dtype := parts[len(parts)-1]
	return Mask(local, 2, 1) + "@" + Mask(dname, 2, 1) + "." + dtype
}
