/*Command bio-kmerdiv computes windowed 4-mer diversity scores over a file of
  fixed-length sequences.

  bio-kmerdiv windows [flags] path

    Writes one TSV row per window with columns START (0-based index of the
    first sequence in the window), SUM (the summed pairwise Hamming distance
    between the window's presence sets) and SCORE (SUM normalized by the
    number of pairs and the 256-bit universe).  Output goes to stdout unless
    -out is set.

  bio-kmerdiv summary [flags] path

    Prints the mean, median, min, max and standard deviation of the window
    scores as JSON.

  The input is raw concatenated 178-byte records, FASTA or FASTQ; see
  -format.  Paths may be local or any scheme registered with
  github.com/grailbio/base/file, and may be gzip/bzip2/zstd compressed.
*/
package main
