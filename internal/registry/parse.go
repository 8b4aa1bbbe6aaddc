// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-lab-manager/models"
	"github.com/beevik/etree"
)

// element names of the response document
const (
	tagResponse = "response"
	tagError    = "error"
	tagConfigs  = "cfgs"
	tagConfig   = "cfg"
	tagName     = "name"
	tagServer   = "server"
	tagPort     = "port"
)

// ParseResponse parses an XML response and adds every <cfg> it lists.
//
// If the response carries a non-empty <error> element, its text is returned
// and the registry is left untouched. Otherwise each <cfg> under <cfgs> is
// passed to [ConfigRegistry.AddConfig] in document order and an empty string
// is returned. Missing <name>, <server> or <port> children are read as
// empty strings.
//
// Text that is not a well-formed document (including empty input, several
// root elements or text outside the root) returns an error wrapping
// [ErrParse]; a document whose root is not <response> returns an error
// wrapping [ErrResponseNotFound].
func (r *ConfigRegistry) ParseResponse(responseText string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(responseText); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := checkDocument(doc); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}

	response := doc.SelectElement(tagResponse)
	if response == nil {
		return "", ErrResponseNotFound
	}

	if msg := childText(response, tagError); msg != "" {
		return msg, nil
	}

	cfgs := response.SelectElement(tagConfigs)
	if cfgs == nil {
		return "", nil
	}

	for _, cfg := range cfgs.SelectElements(tagConfig) {
		r.AddConfig(
			childText(cfg, tagName),
			childText(cfg, tagServer),
			childText(cfg, tagPort),
		)
	}

	return "", nil
}

// checkDocument rejects what etree tolerates but a well-formed document
// cannot contain: no root element, more than one root, or non-whitespace
// text at the top level.
func checkDocument(doc *etree.Document) error {
	switch roots := len(doc.ChildElements()); {
	case roots == 0:
		return errors.New("no root element")
	case roots > 1:
		return fmt.Errorf("%d root elements", roots)
	}

	for _, tok := range doc.Child {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) != "" {
			return fmt.Errorf("text outside the root element: %q", strings.TrimSpace(cd.Data))
		}
	}
	return nil
}

// childText returns the text of the first child element named tag, or ""
// when there is none.
func childText(parent *etree.Element, tag string) string {
	child := parent.SelectElement(tag)
	if child == nil {
		return ""
	}
	return child.Text()
}

// BuildResponse renders configs (and errMsg, when non-empty) in the response
// shape accepted by [ConfigRegistry.ParseResponse].
func BuildResponse(configs []models.ConfigInfo, errMsg string) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	response := doc.CreateElement(tagResponse)
	if errMsg != "" {
		response.CreateElement(tagError).SetText(errMsg)
	}

	cfgs := response.CreateElement(tagConfigs)
	for _, c := range configs {
		cfg := cfgs.CreateElement(tagConfig)
		cfg.CreateElement(tagName).SetText(c.Name)
		cfg.CreateElement(tagServer).SetText(c.Server)
		cfg.CreateElement(tagPort).SetText(c.Port)
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("error writing xml response: %w", err)
	}
	return out, nil
}
