// Command heldkarp solves small Travelling Salesman instances exactly.
//
// 🚀 What is heldkarp?
//
//	A dense, possibly asymmetric cost matrix goes in; the cheapest closed
//	tour that visits every vertex once and returns to the start comes out.
//	The solver is the classic Held–Karp bitmask DP, O(n²·2ⁿ) time and
//	O(n·2ⁿ) memory, so it targets n ≤ 24.
//
// 📦 Packages
//
//   - tsp:      the solver (Solve), tour utilities and typed errors
//   - instance: text and YAML codecs plus a deterministic generator
//   - cmd:      the cobra command tree (solve, gen, version)
//
// ✨ Usage
//
//	heldkarp < input.txt
//	heldkarp --format yaml route.yaml
//	heldkarp gen -n 12 --seed 7 --missing 0.3 --feasible | heldkarp -v
//
// Exit status is 0 when a tour was printed, 2 when the instance has no
// Hamiltonian cycle, and 1 for any other failure.
package main
