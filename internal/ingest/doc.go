// Package ingest loads and produces table records: CSV files, seeded sample rows, and a
// paced batch feeder used to stream records into an engine.
package ingest
