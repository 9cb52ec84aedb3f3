/*
The package tlv implements decoding, re-encoding and in-place mutation of
BER-TLV data as it is used for EMV payment card data. This implementation is
solely based on:

	[BER] ISO/IEC 8825-1, Basic Encoding Rules
	[EMV] EMV 4.3 Book 3, Annex B (Rules for BER-TLV Data Objects)

A decoded message is represented as a forest of Elements. Constructed tags
carry their nested data objects as ordered children. Decoding is best-effort:
recoverable problems are collected as ParseErrors alongside the partial
result, so a caller always gets something to work with.

Restrictions:
Indefinite lengths ([BER] 8.1.3.6) are not supported.
*/
package tlv
