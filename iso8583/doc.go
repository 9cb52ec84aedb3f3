/*
The package iso8583 implements decoding of ISO 8583 financial transaction
messages: the message type indicator (MTI), primary/secondary/tertiary
bitmaps and the fixed and variable-length data elements. This implementation
is based on:

	[ISO] ISO 8583-1:1987, Financial transaction card originated messages

Decoding is best-effort: recoverable problems are collected as ParseErrors
alongside the partial result, only malformed input (bad MTI digits, message
shorter than MTI plus primary bitmap) short-circuits with a single error.

Abbreviations:
MTI: Message Type Indicator
LLVAR, LLLVAR: variable-length fields with a 2 or 3 digit length indicator

Restrictions:
Message packing is not supported, this package only decodes.
*/
package iso8583
