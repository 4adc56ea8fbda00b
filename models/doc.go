// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SubmitRequest: target, name, age, belief, questionText. Name, age and
    questionText are loosely typed so malformed client JSON still decodes;
    the validate package settles their final types.

# Response Types

  - SubmitResponse: id
  - AdminListResponse: total, count, rows
  - DeleteResponse: ok, id
  - ErrorResponse: error

# Domain Types

Question is the stored record. Name and Age are pointers so absent values
serialize as JSON null. CreatedAt is a fixed-width UTC timestamp string
(CreatedAtLayout) that sorts lexicographically in chronological order.

AllowedBeliefs lists the seven accepted belief tags; targets are "god" and
"devil". IsAllowedTarget and IsAllowedBelief check membership.
*/
package models
