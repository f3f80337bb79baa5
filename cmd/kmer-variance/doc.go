/*Command kmer-variance is the batch benchmark for windowed k-mer diversity.
  It reads up to num_sequences fixed-length (178-byte) records from path,
  encodes each as a 4-mer presence set, and slides a 100-sequence all-pairs
  window across them 1000 times.  It prints a single checksum: the sum, over
  all iterations, of the running distance total after each slide.

  Usage: kmer-variance [-window=100] [-iterations=1000] num_sequences path

  The exit status is 1 on a usage error or if path cannot be read.  Too few
  sequences for one window is reported on stderr, but is not a failure.
*/
package main
