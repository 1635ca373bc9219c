// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package property

import (
	"github.com/samber/oops"

	"github.com/holomush/propsheet/internal/content"
	"github.com/holomush/propsheet/internal/registry"
	"github.com/holomush/propsheet/internal/resource"
)

// NamedSheet is a property sheet declared by a content type.
type NamedSheet struct {
	Name  string
	Title string
	Sheet *PropertySheet
}

// SheetsFor instantiates the property sheets declared by the content type
// of res, in declaration order. Resources without declared sheets yield nil.
func SheetsFor(res resource.Resource, req *registry.Request) ([]NamedSheet, error) {
	if req == nil || req.Registry == nil || req.Registry.Content() == nil {
		return nil, nil
	}

	raw := req.Registry.Content().Metadata(res, content.PropertySheetsKey, nil)
	if raw == nil {
		return nil, nil
	}
	decls, ok := raw.([]content.SheetDecl)
	if !ok {
		typeName, _ := content.TypeOf(res)
		return nil, oops.Code("SHEETS_INVALID").
			With("content_type", typeName).
			Errorf("property sheet declaration has unexpected type %T", raw)
	}

	sheets := make([]NamedSheet, 0, len(decls))
	for _, decl := range decls {
		sheets = append(sheets, NamedSheet{
			Name:  decl.Name,
			Title: decl.Title,
			Sheet: NewPropertySheet(res, req, decl.Schema()),
		})
	}
	return sheets, nil
}

// SheetFor returns the declared sheet called name.
func SheetFor(res resource.Resource, req *registry.Request, name string) (*PropertySheet, error) {
	sheets, err := SheetsFor(res, req)
	if err != nil {
		return nil, err
	}
	for _, s := range sheets {
		if s.Name == name {
			return s.Sheet, nil
		}
	}
	return nil, oops.Code("SHEET_NOT_FOUND").With("sheet", name).Errorf("property sheet %q not found", name)
}
