// Package budget is the cycle-based aggregation core: it normalizes
// category limits across base frequencies, computes cycle windows from
// wall-clock time, filters the transaction ledger against those windows,
// and derives the summary and trend figures the presentation layer renders.
//
// Every function here is pure: no database access, no clock reads, no
// logging. Callers load a complete snapshot of categories, transactions,
// and settings and pass it in together with "now"; recomputation is always
// full, never incremental.
package budget
