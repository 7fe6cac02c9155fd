// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package rules routes links to browser profiles using an ordered list of URL
// rules.
//
// Each rule pairs a urlrule pattern with a target profile. Rules are compiled
// up front so that every invalid pattern is reported at once, then evaluated
// in order for each link; the first rule whose pattern matches decides where
// the link opens.
//
//	set, err := rules.Compile([]rules.Rule{
//		{Pattern: "**.corp.example.com", Profile: "chrome/work"},
//		{Pattern: "youtube.com", Profile: "firefox/default", Incognito: true},
//	})
//	if err != nil {
//		return err // errors.Join of *rules.RuleError
//	}
//
//	d, err := set.Route(rawURL)
//	if err != nil || !d.Matched {
//		// show the chooser
//	}
//
// Route returns URL errors from urlrule unchanged; callers typically fall back
// to showing the chooser for links that cannot be evaluated.
package rules
