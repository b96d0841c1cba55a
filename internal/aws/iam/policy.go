package iam

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
)

// PolicyDocument is an IAM policy document such as a role's
// AssumeRolePolicyDocument.
type PolicyDocument struct {
	Version   string     `json:"Version"`
	Statement Statements `json:"Statement"`
}

// PolicyStatement is a single statement of a policy document. Only the fields
// needed to inspect trust relationships are decoded.
type PolicyStatement struct {
	Sid       string     `json:"Sid,omitempty"`
	Effect    string     `json:"Effect"`
	Principal *Principal `json:"Principal,omitempty"`
	Action    StringList `json:"Action,omitempty"`
}

// AWSPrincipals returns the entries of the statement's "AWS" principal, in
// document order.
func (s PolicyStatement) AWSPrincipals() []string {
	if s.Principal == nil {
		return nil
	}
	return s.Principal.AWS
}

// Principal is the Principal element of a statement. It is either the
// wildcard string "*" or a map from principal type to one or more values.
type Principal struct {
	Wildcard      bool
	AWS           StringList `json:"AWS,omitempty"`
	Service       StringList `json:"Service,omitempty"`
	Federated     StringList `json:"Federated,omitempty"`
	CanonicalUser StringList `json:"CanonicalUser,omitempty"`
}

func (p *Principal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Principal{Wildcard: s == "*"}
		return nil
	}

	type plain Principal
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Principal(v)
	return nil
}

// StringList decodes a JSON value that may be a single string or an array
// of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = StringList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// Statements decodes a Statement element that may be a single object or an
// array of objects.
type Statements []PolicyStatement

func (s *Statements) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var one PolicyStatement
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*s = Statements{one}
		return nil
	}

	var many []PolicyStatement
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// ParsePolicyDocument decodes a policy document as returned by the IAM API,
// which URL-encodes the JSON. An empty document yields no statements.
func ParsePolicyDocument(raw string) (PolicyDocument, error) {
	var doc PolicyDocument
	if raw == "" {
		return doc, nil
	}
	if decoded, err := url.QueryUnescape(raw); err == nil {
		raw = decoded
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return PolicyDocument{}, fmt.Errorf("parse policy document: %w", err)
	}
	return doc, nil
}
