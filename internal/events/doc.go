// Package events publishes item change notifications to an AMQP topic
// exchange. Publishing happens only after the owning transaction has
// committed, and its failure never changes the outcome of the request.
package events
