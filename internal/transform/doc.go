// Package transform runs a validated CipherRequest through AES or DES.
//
// Blocks are processed independently. On encryption the message is padded
// with spaces up to a whole number of blocks and the result is either raw
// bytes or upper-case hex. On decryption the same encoding is expected as
// input and the trailing padding is trimmed from the plaintext.
package transform
