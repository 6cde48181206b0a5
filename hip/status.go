package hip

import "fmt"

// Status is a status code returned by the HIP runtime (hipError_t).
type Status int

// Status codes returned by the HIP runtime. Values match hipError_t.
const (
	StatusSuccess                    Status = 0
	StatusErrorInvalidValue          Status = 1
	StatusErrorOutOfMemory           Status = 2
	StatusErrorNotInitialized        Status = 3
	StatusErrorDeinitialized         Status = 4
	StatusErrorInvalidConfiguration  Status = 9
	StatusErrorNoDevice              Status = 100
	StatusErrorInvalidDevice         Status = 101
	StatusErrorInvalidContext        Status = 201
	StatusErrorInvalidResourceHandle Status = 400
	StatusErrorNotReady              Status = 600
	StatusErrorNotSupported          Status = 801
	StatusErrorUnknown               Status = 999
)

var statusNames = map[Status]string{
	StatusSuccess:                    "hipSuccess",
	StatusErrorInvalidValue:          "hipErrorInvalidValue",
	StatusErrorOutOfMemory:           "hipErrorOutOfMemory",
	StatusErrorNotInitialized:        "hipErrorNotInitialized",
	StatusErrorDeinitialized:         "hipErrorDeinitialized",
	StatusErrorInvalidConfiguration:  "hipErrorInvalidConfiguration",
	StatusErrorNoDevice:              "hipErrorNoDevice",
	StatusErrorInvalidDevice:         "hipErrorInvalidDevice",
	StatusErrorInvalidContext:        "hipErrorInvalidContext",
	StatusErrorInvalidResourceHandle: "hipErrorInvalidResourceHandle",
	StatusErrorNotReady:              "hipErrorNotReady",
	StatusErrorNotSupported:          "hipErrorNotSupported",
	StatusErrorUnknown:               "hipErrorUnknown",
}

// String implements fmt.Stringer, it returns the name used by hipGetErrorName.
func (s Status) String() string {
	if name, found := statusNames[s]; found {
		return name
	}
	return fmt.Sprintf("hipError(%d)", int(s))
}

// Ok returns whether the status is StatusSuccess.
func (s Status) Ok() bool {
	return s == StatusSuccess
}
