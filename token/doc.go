// Package token splits input text into whitespace and content runs and
// decomposes content tokens into their non-letter boundary and letter core.
//
// What:
//
//   - Split — partitions text into maximal runs of whitespace and
//     non-whitespace. Concatenating the resulting token texts in order
//     reconstructs the input byte-for-byte; nothing is trimmed, collapsed,
//     or reordered.
//   - Classify — decomposes one content token into Segment{Prefix, Core,
//     Suffix}: a leading run of non-letters, the maximal interior run that
//     starts and ends on a letter, and a trailing run of non-letters.
//     Prefix + Core + Suffix always equals the token.
//
// Why:
//
//   - The scrambler must leave whitespace layout and punctuation anchors
//     exactly where they were; only the letter core of a word is eligible
//     for permutation.
//
// Classification:
//
//   - Whitespace is unicode.IsSpace (the Unicode White_Space property, not
//     just ASCII blanks); letters are unicode.IsLetter (the full letter
//     category, so accented and non-Latin letters count). Unassigned code
//     points are non-letters.
//   - A token with no letters keeps its whole text in Prefix with an empty
//     Core and Suffix.
//
// Complexity:
//
//   - Split is a single O(n) pass; Classify is O(len(token)).
//
// Errors:
//
//   - None. Both functions are total over all strings, including empty ones.
package token
