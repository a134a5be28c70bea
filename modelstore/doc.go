// Package modelstore downloads and caches published genome-scale models
// so the CLI can rank them by name instead of by file path.
//
// A Store maps registered names to upstream URLs and keeps one local file
// per model under its directory (./models by default, overridable with
// the GEMRANK_MODELS_DIR environment variable or WithDir). Fetch returns
// the cached file when present and downloads it otherwise; Wipe removes
// everything the store manages.
//
// The registry is deliberately small and hardcoded: recon3d (BiGG Recon3D
// as COBRA JSON, with BiGG's "_AT" transcript-variant suffixes rewritten
// to ".") and ratgem (Rat-GEM as a MATLAB .mat blob, stored verbatim for
// downstream tools — this package never parses it).
package modelstore
