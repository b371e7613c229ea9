package http1

type state uint8

const (
	eMethod state = iota + 1
	ePath
	eProto
	eHeaderKey
	eHeaderValue
	eHeadEnd
	eDone
	eDead
)
