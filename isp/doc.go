// Package isp groups the interface segregation examples.
//
//   - bad: one fat Printer interface forcing a simple printer to stub out scanning and faxing
//   - good: one interface per capability, composed only where a device really has it
//   - task: a Phone interface forcing an old handset to fail on features it doesn't have
package isp
