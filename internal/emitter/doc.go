// Package emitter sends rendered HTTP formatters to a log sink as an ordered sequence of records.
//
// Text, form and empty bodies become one text record; binary bodies become one attachment
// captioned with the message head; multipart requests become a step holding one record per
// section with strictly increasing timestamps, so stores that order by time keep the sections
// in declaration order.
package emitter
