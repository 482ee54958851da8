// Package list implements Singly and Doubly, node-chain containers with O(1) insertion and removal
// at the head. Doubly additionally keeps a tail reference, making both ends O(1), and supports
// backward traversal.
//
// Each node is owned by exactly one list. Removal unlinks the node and clears its links before the
// value is handed back, so no removed node keeps the rest of the chain reachable.
// Neither list is safe for concurrent use.
package list
