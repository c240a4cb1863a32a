// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package main

import (
	"encoding/base64"
	"encoding/json"
	"net/netip"
	"time"

	"github.com/aspen-iam/aspen"
)

// actorWire is the CLI's JSON shape for one acting identity. At least
// one of Arn/CanonicalUser/(ServiceGlobal|ServiceRegional) should be set;
// a zero-value actorWire satisfies PrincipalIdentity by matching nothing.
type actorWire struct {
	Arn             string `json:"arn,omitempty"`
	CanonicalUser   string `json:"canonical_user,omitempty"`
	ServiceGlobal   string `json:"service_global,omitempty"`
	ServiceRegional string `json:"service_regional,omitempty"`
}

func (a actorWire) ARN() (aspen.Arn, bool) {
	if a.Arn == "" {
		return aspen.Arn{}, false
	}
	parsed, err := aspen.ParseArn(a.Arn)
	if err != nil {
		return aspen.Arn{}, false
	}
	return parsed, true
}

func (a actorWire) CanonicalUserID() (string, bool) {
	if a.CanonicalUser == "" {
		return "", false
	}
	return a.CanonicalUser, true
}

func (a actorWire) ServiceDNSNames() (string, string, bool) {
	if a.ServiceGlobal == "" && a.ServiceRegional == "" {
		return "", "", false
	}
	return a.ServiceGlobal, a.ServiceRegional, true
}

// sessionValueWire is the CLI's JSON shape for one typed session entry.
// Type defaults to "string" when omitted.
type sessionValueWire struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

func (w sessionValueWire) toSessionValue() (aspen.SessionValue, error) {
	switch w.Type {
	case "", "string":
		return aspen.StringValue(w.Value), nil
	case "integer":
		var n int64
		if err := json.Unmarshal([]byte(w.Value), &n); err != nil {
			return aspen.SessionValue{}, err
		}
		return aspen.IntegerValue(n), nil
	case "bool":
		return aspen.BoolValue(w.Value == "true"), nil
	case "binary":
		b, err := base64.StdEncoding.DecodeString(w.Value)
		if err != nil {
			return aspen.SessionValue{}, err
		}
		return aspen.BinaryValue(b), nil
	case "timestamp":
		t, err := time.Parse(time.RFC3339, w.Value)
		if err != nil {
			return aspen.SessionValue{}, err
		}
		return aspen.TimestampValue(t), nil
	case "ipaddr":
		addr, err := netip.ParseAddr(w.Value)
		if err != nil {
			return aspen.SessionValue{}, err
		}
		return aspen.IPAddrValue(addr), nil
	case "null":
		return aspen.NullValue(), nil
	default:
		return aspen.StringValue(w.Value), nil
	}
}

// requestWire is the CLI's JSON request document, translated into an
// aspen.Request before evaluation.
type requestWire struct {
	Service   string                      `json:"service"`
	Action    string                      `json:"action"`
	Actors    []actorWire                 `json:"actors"`
	Resources []string                    `json:"resources"`
	Session   map[string]sessionValueWire `json:"session"`
}

func (w requestWire) toRequest() (aspen.Request, error) {
	req := aspen.NewRequest(w.Service, w.Action)
	for _, a := range w.Actors {
		req = req.WithActor(a)
	}
	for _, r := range w.Resources {
		arn, err := aspen.ParseArn(r)
		if err != nil {
			return aspen.Request{}, err
		}
		req = req.WithResource(arn)
	}
	for key, sv := range w.Session {
		value, err := sv.toSessionValue()
		if err != nil {
			return aspen.Request{}, err
		}
		req = req.WithSession(key, value)
	}
	return req, nil
}
