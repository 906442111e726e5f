// Package fileutil writes output files so readers never observe a partial
// plan.
package fileutil
