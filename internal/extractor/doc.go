// Package extractor pulls structured fields out of classified documents
// using per-category regular expressions.
//
// Each content category has its own field schema: invoices carry invoice
// number, date, company, and total amount; resumes carry candidate name,
// email, phone, and years of experience; utility bills carry account
// number, date, kWh usage, and amount due. Extraction is best-effort:
// fields that do not match are reported as nil rather than omitted, and
// categories without a schema produce an empty field set.
package extractor
