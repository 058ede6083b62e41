// Package definition loads form definitions written as JSON or YAML and turns
// them into model.Form documents. A definition file describes one form:
//
//	id: contact
//	title: Contact us
//	method: POST
//	action: /api/contact
//	fields:
//	  - type: text
//	    name: name
//	    required: true
//	  - type: dropdown
//	    name: topic
//	    enum:
//	      members: [{name: Sales}, {name: Support}]
//	      default: Support
//
// The submission target may also be spelled endpointUrl or url. LoadFS reads
// every definition below a directory into a Store keyed by form id.
package definition
