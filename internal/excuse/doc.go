// Package excuse decides, for each enabled transport mode, whether it is
// usable for a simulated trip and picks a displayable excuse when it is not.
//
// Key concepts:
//   - Catalog: the build-time table of excuses per mode, embedded as YAML
//   - Engine: runs planning attempts against an injected random.Source
//   - Result: the modes judged unavailable in one attempt, with their excuse
//
// An Engine holds no state between attempts; every call to PlanTrip rolls
// fresh draws for every enabled mode.
package excuse
