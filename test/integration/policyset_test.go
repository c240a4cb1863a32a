// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aspen Contributors

//go:build integration

package integration

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/aspen-iam/aspen"
	"github.com/aspen-iam/aspen/audit"
	"github.com/aspen-iam/aspen/policyset"
)

// recordingWriter captures every audit entry handed to it, standing in
// for a real durable sink.
type recordingWriter struct {
	entries []audit.Entry
}

func (w *recordingWriter) Write(_ context.Context, entry audit.Entry) error {
	w.entries = append(w.entries, entry)
	return nil
}

var _ = Describe("policy set manifest loading", func() {
	var (
		dir string
		ps  *policyset.PolicySet
		w   *recordingWriter
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "alice.json"), []byte(`{
			"Version": "2012-10-17",
			"Statement": [
				{"Effect": "Allow", "Action": "s3:GetObject", "Resource": "arn:aws:s3:::bucket/*"}
			]
		}`), 0o600)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "deny-root.json"), []byte(`{
			"Version": "2012-10-17",
			"Statement": [
				{"Effect": "Deny", "Action": "*", "Resource": "arn:aws:s3:::secrets/*"}
			]
		}`), 0o600)).To(Succeed())

		manifest, err := policyset.ParseManifest([]byte(`
schema_version: "1.0.0"
attachments:
  - kind: inline
    entity_arn: "arn:aws:iam::123456789012:user/alice"
    policy_name: "AllowBucketRead"
    policy_file: "alice.json"
  - kind: resource
    resource_arn: "arn:aws:s3:::secrets"
    policy_name: "DenySecrets"
    policy_file: "deny-root.json"
`))
		Expect(err).NotTo(HaveOccurred())

		ps = policyset.New()
		Expect(policyset.LoadInto(ps, manifest, dir)).To(Succeed())

		w = &recordingWriter{}
	})

	It("allows an action permitted by an attached inline policy", func() {
		resource, err := aspen.ParseArn("arn:aws:s3:::bucket/report.pdf")
		Expect(err).NotTo(HaveOccurred())
		req := aspen.NewRequest("s3", "GetObject").WithResource(resource)

		decision, _, err := ps.EvaluateAny(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(decision).To(Equal(aspen.Allow))

		audit.Record(context.Background(), w, audit.Entry{Service: req.Service, Action: req.Action, Decision: decision})
		Expect(w.entries).To(HaveLen(1))
		Expect(w.entries[0].Decision).To(Equal(aspen.Allow))
	})

	It("denies an action matched by an attached resource policy's explicit Deny", func() {
		resource, err := aspen.ParseArn("arn:aws:s3:::secrets/keys.txt")
		Expect(err).NotTo(HaveOccurred())
		req := aspen.NewRequest("s3", "s3:GetObject").WithResource(resource)

		decision, match, err := ps.EvaluateAny(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(decision).To(Equal(aspen.Deny))
		Expect(match).NotTo(BeNil())
	})

	It("default-denies an action matched by nothing in the set", func() {
		resource, err := aspen.ParseArn("arn:aws:ec2:::instance/i-1")
		Expect(err).NotTo(HaveOccurred())
		req := aspen.NewRequest("ec2", "ec2:RunInstances").WithResource(resource)

		decision, match, err := ps.EvaluateAny(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(decision).To(Equal(aspen.DefaultDeny))
		Expect(match).To(BeNil())
	})
})
