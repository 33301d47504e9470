// Package delivery provides the Delivery companion entity: a per-order record
// tracking courier assignment and the completion timestamp stamped when the
// order reaches its terminal Delivered status. Its lifecycle is tied 1:1 to
// its order.
package delivery
