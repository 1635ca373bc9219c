// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package property_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/holomush/propsheet/internal/event"
	"github.com/holomush/propsheet/internal/property"
	"github.com/holomush/propsheet/internal/registry"
	"github.com/holomush/propsheet/internal/resource"
	"github.com/holomush/propsheet/internal/schema"
)

var _ = Describe("Property sheets", func() {
	var (
		ctx context.Context
		env *testEnv
		req *registry.Request
	)

	BeforeEach(func() {
		ctx = context.Background()
		env = setupTestEnv()
		req = registry.NewRequest(env.registry, "editor")
	})

	Describe("sheet discovery", func() {
		It("instantiates declared sheets in manifest order", func() {
			sheets, err := property.SheetsFor(resource.New("doc.page"), req)
			Expect(err).NotTo(HaveOccurred())

			names := make([]string, 0, len(sheets))
			for _, s := range sheets {
				names = append(names, s.Name)
			}
			Expect(names).To(Equal([]string{"basic", "publishing"}))
			Expect(sheets[1].Title).To(Equal("Publishing"))
		})

		It("finds no sheets on a plain type", func() {
			sheets, err := property.SheetsFor(resource.New("folder"), req)
			Expect(err).NotTo(HaveOccurred())
			Expect(sheets).To(BeEmpty())
		})
	})

	Describe("writing through a sheet", func() {
		var (
			page  *resource.Object
			sheet *property.PropertySheet
		)

		BeforeEach(func() {
			page = resource.New("doc.page")
			var err error
			sheet, err = property.SheetFor(page, req, "basic")
			Expect(err).NotTo(HaveOccurred())
		})

		It("reads missing fields as Null", func() {
			vals := sheet.Get()
			Expect(schema.IsNull(vals["title"])).To(BeTrue())
			Expect(schema.IsNull(vals["description"])).To(BeTrue())
		})

		It("publishes one modification event for the resource", func() {
			changed, err := sheet.Set(ctx, property.Values{"title": "Hello", "description": "World"})
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			events := env.received()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Type).To(Equal(event.TypeObjectModified))
			Expect(events[0].Object).To(BeIdenticalTo(page))
			Expect(events[0].Subject).To(Equal("editor"))
			Expect(sheet.Get()).To(Equal(property.Values{"title": "Hello", "description": "World"}))
		})

		It("publishes nothing when values are unchanged", func() {
			_, err := sheet.Set(ctx, property.Values{"title": "Hello"})
			Expect(err).NotTo(HaveOccurred())

			changed, err := sheet.Set(ctx, property.Values{"title": "Hello"})
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())
			Expect(env.received()).To(HaveLen(1))
			Expect(testutil.ToFloat64(env.metrics.SheetSetsTotal.WithLabelValues("false"))).To(Equal(1.0))
		})

		It("leaves omitted fields untouched", func() {
			changed, err := sheet.Set(ctx, property.Values{"title": "Hello", "description": "World"}, "description")
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			_, ok := page.Attr("description")
			Expect(ok).To(BeFalse())
		})

		It("never writes fields of another sheet", func() {
			_, err := sheet.Set(ctx, property.Values{"title": "Hello", "expires": "2027-01-01"})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.AttrNames()).To(Equal([]string{"title"}))
		})
	})

	Describe("the propertied predicate", func() {
		It("holds only for types that declare sheets", func() {
			domain, err := property.GetDomain(env.registry)
			Expect(err).NotTo(HaveOccurred())
			Expect(domain.All(resource.New("doc.news"), req)).To(ConsistOf(property.PropertiedPredicateName))
			Expect(domain.All(resource.New("folder"), req)).To(BeEmpty())
		})

		It("matches plain types when configured false", func() {
			domain, err := property.GetDomain(env.registry)
			Expect(err).NotTo(HaveOccurred())
			pred, err := domain.Build(property.PropertiedPredicateName, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(pred.Text()).To(Equal("propertied = False"))
			Expect(pred.Match(resource.New("folder"), req)).To(BeTrue())
			Expect(pred.Match(resource.New("doc.page"), req)).To(BeFalse())
		})

		It("shares one domain between concurrent callers", func() {
			reg := registry.New()
			domains := make([]*property.PredicateDomain, 8)
			var wg sync.WaitGroup
			for i := range domains {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					domain, err := property.GetDomain(reg)
					Expect(err).NotTo(HaveOccurred())
					domains[i] = domain
				}(i)
			}
			wg.Wait()

			for _, d := range domains {
				Expect(d).To(BeIdenticalTo(domains[0]))
			}
		})
	})
})
