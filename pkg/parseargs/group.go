// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseargs

// expandGroup rewrites a short option cluster (the text after the dash) into
// single short options. A string option that is not last takes the rest of
// the cluster as its value and ends the expansion: with "f" a string option,
// "afb" becomes ["-a", "-fb"].
//
// Letters resolve the same way as a lone "-x": through a declared alias, or
// else to the long option of the same name.
func (p *parser) expandGroup(cluster string) ([]string, error) {
	var out []string
	for i := 0; i < len(cluster); {
		short, size := firstShort(cluster[i:])
		long, _ := p.ix.longFor(short)
		if _, declared := p.ix.lookup(long); !declared && p.strict {
			return nil, &UnknownOptionError{Option: long, RawName: "-" + short}
		}
		if p.ix.typeOf(long) != String || i+size == len(cluster) {
			out = append(out, "-"+short)
			i += size
			continue
		}
		if p.strict {
			return nil, &MissingArgumentError{Option: long, Short: short, InGroup: true}
		}
		out = append(out, "-"+cluster[i:])
		break
	}
	return out, nil
}
