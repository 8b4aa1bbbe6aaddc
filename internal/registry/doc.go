// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry holds the ordered table of Lab Manager configurations
// returned by the backend.
//
// A [ConfigRegistry] is filled either from an XML response via
// [ConfigRegistry.ParseResponse] or entry by entry via
// [ConfigRegistry.AddConfig]. Names are kept in byte-wise sorted order, so
// every read ([ConfigRegistry.ConfigNames], [ConfigRegistry.Configs],
// [ConfigRegistry.PopulateListControl]) is deterministic.
//
// The expected response shape is:
//
//	<response>
//	  <error>optional error text</error>
//	  <cfgs>
//	    <cfg><name>...</name><server>...</server><port>...</port></cfg>
//	  </cfgs>
//	</response>
//
// A ConfigRegistry is not safe for concurrent use. Callers that share one
// between goroutines must serialize access themselves.
package registry
