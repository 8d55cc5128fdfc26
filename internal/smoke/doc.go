// Package smoke runs a short end-to-end scenario against a Notes API target
// and renders the outcome as a terminal report.
package smoke
