// Package jobscout scrapes job listings from several job boards, normalizes
// them into a common record shape and stores them with deduplication.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, goquery/).
package jobscout
