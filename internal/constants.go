/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent   = "senticl-drawbot/0.3.0 (+https://github.com/mikeb26/senticl-drawbot)"
	PrefsBucket = "bopmatic-senticl-drawbot-prod-prefs"

	// keys the saved selections live under in whichever store is configured
	ParticipantsKey = "senti-cl:participants:v3"
	RulesKey        = "senti-cl:rules:v1"
	FixtureKey      = "senti-cl:fixtures:v1"
)
