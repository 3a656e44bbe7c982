// Package table parses the Parker & Dubberstein Babylonian/Julian correspondence table.
//
// Each data line of the transcription is one Babylonian civil year laid out in two
// fixed-width columns:
//
//	1 626 4/5 5/4 6/3 7/2 8/1 8/30            9/29 10/28 11/27 12/26 625 1/25 2/23
//	^ ^   ^                                   ^                      ^
//	| |   first semester months (M/D)         second semester        new Julian year
//	| Julian year (BCE count)                 (column 42 onward)     label mid-column
//	regnal year
//
// The second column starts at character 42. A semester whose first two tokens carry
// no "/" opens a Julian year; otherwise the single token without "/" marks where the
// Julian year changes. Lines that do not start with a digit name a king and are skipped.
//
// Parsing is a fold over lines. ParseLine takes a State and returns the next one;
// nothing is kept between calls. Every validation failure is returned as one of the
// typed errors in core/errors and is meant to stop the run.
package table
