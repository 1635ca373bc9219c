// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package property

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/holomush/propsheet/internal/content"
	"github.com/holomush/propsheet/internal/registry"
	"github.com/holomush/propsheet/internal/resource"
)

func TestPropertiedPredicate_Text(t *testing.T) {
	assert.Equal(t, "propertied = True", NewPropertiedPredicate(true).Text())
	assert.Equal(t, "propertied = False", NewPropertiedPredicate(false).Text())
}

func TestPropertiedPredicate_PHash(t *testing.T) {
	inst := NewPropertiedPredicate(true)

	assert.Equal(t, "propertied = True", inst.PHash())
	assert.Equal(t, inst.Text(), inst.PHash())
}

func TestPropertiedPredicate_ValueTruthiness(t *testing.T) {
	assert.True(t, NewPropertiedPredicate("yes").Value())
	assert.True(t, NewPropertiedPredicate(1).Value())
	assert.False(t, NewPropertiedPredicate("").Value())
	assert.False(t, NewPropertiedPredicate(nil).Value())
}

func TestPropertiedPredicate_Match_Delegates(t *testing.T) {
	reg := registry.New()
	req := registry.NewRequest(reg, "")
	inst := NewPropertiedPredicate(true)

	var gotRes resource.Resource
	var gotReq *registry.Request
	inst.IsPropertied = func(res resource.Resource, r *registry.Request) bool {
		gotRes = res
		gotReq = r
		return true
	}

	assert.True(t, inst.Match(nil, req))
	assert.Nil(t, gotRes)
	assert.Same(t, reg, gotReq.Registry)
}

func TestPropertiedPredicate_Match_ComparesToValue(t *testing.T) {
	tests := []struct {
		name       string
		value      bool
		propertied bool
		want       bool
	}{
		{"want propertied, is propertied", true, true, true},
		{"want propertied, is not", true, false, false},
		{"want plain, is propertied", false, true, false},
		{"want plain, is not", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := NewPropertiedPredicate(tt.value)
			inst.IsPropertied = func(resource.Resource, *registry.Request) bool { return tt.propertied }

			assert.Equal(t, tt.want, inst.Match(resource.New("document"), nil))
		})
	}
}

func TestPropertiedPredicate_Match_Default(t *testing.T) {
	types := content.NewRegistry()
	types.MustRegister(content.ContentType{
		Name:     "document",
		Metadata: map[string]any{content.PropertySheetsKey: []content.SheetDecl{{Name: "basic", Fields: []string{"title"}}}},
	})
	reg := registry.New()
	reg.SetContent(types)
	req := registry.NewRequest(reg, "")

	inst := &PropertiedPredicate{value: true}

	assert.True(t, inst.Match(resource.New("document"), req))
	assert.False(t, inst.Match(resource.New("folder"), req))
}
