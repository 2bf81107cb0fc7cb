// Package network parses MATSim-style transportation network descriptions
// into typed node and link records and assigns dense node indices.
//
// The input is an XML document with two relevant element groups:
//
//	<network>
//	  <nodes>
//	    <node id="A" x="0.0" y="0.0"/>
//	  </nodes>
//	  <links>
//	    <link from="A" to="B" capacity="100" freespeed="2" length="5"/>
//	  </links>
//	</network>
//
// Every attribute is coerced to its typed form at parse time; schema
// violations (missing attributes, non-numeric values) surface as
// INVALID_SCHEMA errors rather than being deferred to matrix construction.
//
// Node identity is the raw source id, which is arbitrary. [BuildIndex]
// assigns each node a dense zero-based index in input order; the matrix
// package addresses everything by these indices.
package network
