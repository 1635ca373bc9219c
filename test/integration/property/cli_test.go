// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package property_test

import (
	"context"
	"os/exec"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
)

const cliDir = "../../../cmd/propsheet"

func runCLI(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "go", append([]string{"run", "."}, args...)...)
	cmd.Dir = cliDir
	output, err := cmd.CombinedOutput()
	return string(output), err
}

var _ = Describe("propsheet CLI", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("validates the shipped manifest", func() {
		output, err := runCLI(ctx, "validate", "../../content-types.yaml")
		Expect(err).NotTo(HaveOccurred(), "validate failed: %s", output)
		Expect(output).To(ContainSubstring("valid (version 1.0.0, 3 types, 3 property sheets)"))
	})

	It("lists propertied types", func() {
		output, err := runCLI(ctx, "types", "--manifest", "../../content-types.yaml", "--match", "doc.*")
		Expect(err).NotTo(HaveOccurred(), "types failed: %s", output)
		Expect(output).To(ContainSubstring("doc.news\tpropertied=true\tsheets=basic"))
		Expect(output).To(ContainSubstring("doc.page\tpropertied=true\tsheets=basic,publishing"))
		Expect(output).NotTo(ContainSubstring("folder"))
	})

	It("writes through a sheet and reports the modification", func() {
		output, err := runCLI(ctx, "sheets", "doc.page",
			"--manifest", "../../content-types.yaml",
			"--sheet", "basic",
			"--set", "title=Hello")
		Expect(err).NotTo(HaveOccurred(), "sheets failed: %s", output)
		Expect(output).To(ContainSubstring("event object_modified"))
		Expect(output).To(ContainSubstring("set basic changed=true"))
		Expect(output).To(ContainSubstring("  title = Hello"))
	})

	It("rejects an unknown content type", func() {
		output, err := runCLI(ctx, "sheets", "nope", "--manifest", "../../content-types.yaml")
		Expect(err).To(HaveOccurred())
		Expect(output).To(ContainSubstring("unknown content type"))
	})
})
