// Package report renders the plain-text artifacts a completed designer run
// produces for downstream analysis. Each Write* function takes an
// io.Writer rather than a path: resolving an output directory, creating
// files, and invoking any plotting script over the written artifacts are
// external collaborators outside this module's scope -- the core only
// ever appends to a sink it is handed. Line structure is the sole format
// contract. Every writer iterates over deterministically ordered data, so
// two runs with the same seed and config produce identical files, except
// mcf_stats.txt: it prints fiber IDs, which are random UUIDs minted afresh
// on every run.
package report
