// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

package policyset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/aspen-iam/aspen"
)

// supportedManifestVersion's major version is the highest manifest schema
// major version this loader understands; a manifest declaring a newer
// major version is rejected rather than silently misread, grounded on the
// teacher's plugin manifest's StrictNewVersion validation.
var supportedManifestVersion = semver.MustParse("1.0.0")

// Manifest is a YAML-authored bundle of policy attachments, each
// pointing at a JSON policy document on disk. It exists so a deployment
// can describe a PolicySet's initial contents declaratively instead of
// wiring Put calls by hand.
type Manifest struct {
	SchemaVersion string               `yaml:"schema_version"`
	Attachments   []ManifestAttachment `yaml:"attachments"`
}

// ManifestAttachment is one entry of a Manifest: a PolicySource
// descriptor plus the path to its policy document, resolved relative to
// the manifest file's directory.
type ManifestAttachment struct {
	Kind        string `yaml:"kind"`
	EntityArn   string `yaml:"entity_arn,omitempty"`
	EntityID    string `yaml:"entity_id,omitempty"`
	PolicyArn   string `yaml:"policy_arn,omitempty"`
	PolicyID    string `yaml:"policy_id,omitempty"`
	PolicyName  string `yaml:"policy_name,omitempty"`
	GroupArn    string `yaml:"group_arn,omitempty"`
	GroupID     string `yaml:"group_id,omitempty"`
	ResourceArn string `yaml:"resource_arn,omitempty"`
	Version     string `yaml:"version,omitempty"`
	PolicyFile  string `yaml:"policy_file"`
}

// ParseManifest parses manifest YAML and validates its schema_version
// against supportedManifestVersion.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest YAML: %w", err)
	}
	if m.SchemaVersion == "" {
		return nil, fmt.Errorf("manifest schema_version is required")
	}
	v, err := semver.StrictNewVersion(m.SchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("manifest schema_version %q must be valid semver: %w", m.SchemaVersion, err)
	}
	if v.Major() > supportedManifestVersion.Major() {
		return nil, fmt.Errorf("manifest schema_version %s is newer than the supported major version %s", v, supportedManifestVersion)
	}
	return &m, nil
}

// source builds the PolicySource this attachment describes, generating
// each entity, group or policy id the manifest omits via
// aspen.GeneratePolicyID.
func (a ManifestAttachment) source() (PolicySource, error) {
	switch a.Kind {
	case "inline":
		id := a.EntityID
		if id == "" {
			id = aspen.GeneratePolicyID()
		}
		return InlineSource(a.EntityArn, id, a.PolicyName), nil
	case "direct_attached":
		id := a.PolicyID
		if id == "" {
			id = aspen.GeneratePolicyID()
		}
		return DirectAttachedSource(a.PolicyArn, id, a.Version), nil
	case "group_inline":
		id := a.GroupID
		if id == "" {
			id = aspen.GeneratePolicyID()
		}
		return GroupInlineSource(a.GroupArn, id, a.PolicyName), nil
	case "group_attached":
		groupID := a.GroupID
		if groupID == "" {
			groupID = aspen.GeneratePolicyID()
		}
		policyID := a.PolicyID
		if policyID == "" {
			policyID = aspen.GeneratePolicyID()
		}
		return GroupAttachedSource(a.GroupArn, groupID, a.PolicyArn, policyID, a.Version), nil
	case "resource":
		return ResourceSource(a.ResourceArn, a.PolicyName), nil
	default:
		return PolicySource{}, fmt.Errorf("unknown attachment kind %q", a.Kind)
	}
}

// LoadInto parses every attachment's policy_file (resolved relative to
// baseDir) and registers it in ps under its described PolicySource.
func LoadInto(ps *PolicySet, m *Manifest, baseDir string) error {
	for _, att := range m.Attachments {
		src, err := att.source()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(filepath.Join(baseDir, att.PolicyFile))
		if err != nil {
			return fmt.Errorf("read policy file %q: %w", att.PolicyFile, err)
		}
		policy, err := aspen.ParsePolicy(data)
		if err != nil {
			return fmt.Errorf("parse policy file %q: %w", att.PolicyFile, err)
		}
		ps.Put(src, policy)
	}
	return nil
}
