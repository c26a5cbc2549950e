/*
Package custody defines the common interfaces that tie the custody engine
together, as well as implementations of some of the simpler components
(when interfaces would be too much overhead).

The engine is a deterministic state machine. Every state transition is a
Msg wrapped in a Tx, dispatched by a router to a Handler and executed
against a transactional KVStore. The hosting process is responsible for
serializing transaction delivery and for cache-wrapping the store, so a
handler never observes a partially applied transaction.

Block information (height, chain id, logger) travels through
context.Context between the host, middleware and handlers. For every value
XYZ of type T stored in the context there are two functions:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)
*/
package custody
