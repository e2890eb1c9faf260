// Package corpus loads raw documents and word lists and turns them into
// embedding corpora.
//
// A Table is a CSV file with one designated text column; row order defines
// document index order, and classification results are written back as an
// additional "class" column with row order preserved. Word lists are plain
// text files with one unique word per line.
//
// The Pipeline embeds large text collections in batches using a worker pool,
// with per-batch retry and exponential backoff at the embedding-provider
// boundary. Results preserve input order regardless of batch completion
// order.
package corpus
