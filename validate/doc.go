// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate checks and normalizes question submissions.

Rules apply in a fixed order and the first failure wins: target enum,
belief enum, question text presence, trimmed length in [8,1200], optional
age in [5,120]. The name field never fails validation: it is trimmed,
truncated to 80 characters, and anything unusable becomes anonymous.

Error values carry the exact French messages returned to clients.
*/
package validate
