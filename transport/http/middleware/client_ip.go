package middleware

import (
	"eyeslot/shared/constant"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// clientIPResolver believes forwarding headers only when the direct peer is a trusted proxy.
type clientIPResolver struct {
	trusted []*net.IPNet
}

func newClientIPResolver(proxies []string) clientIPResolver {
	resolver := clientIPResolver{}

	for _, proxy := range proxies {
		proxy = strings.TrimSpace(proxy)
		if proxy == constant.Empty {
			continue
		}

		if !strings.Contains(proxy, "/") {
			if ip := net.ParseIP(proxy); ip != nil {
				bits := 8 * net.IPv6len
				if ip.To4() != nil {
					bits = 8 * net.IPv4len
				}

				proxy += "/" + strconv.Itoa(bits)
			}
		}

		_, network, err := net.ParseCIDR(proxy)
		if err != nil {
			log.Warn().Err(err).Str("proxy", proxy).Msg("Ignoring invalid trusted proxy")

			continue
		}

		resolver.trusted = append(resolver.trusted, network)
	}

	return resolver
}

func (c clientIPResolver) isTrusted(address string) bool {
	ip := net.ParseIP(address)
	if ip == nil {
		return false
	}

	for _, network := range c.trusted {
		if network.Contains(ip) {
			return true
		}
	}

	return false
}

// resolve walks X-Forwarded-For from the nearest hop and returns the first untrusted address.
func (c clientIPResolver) resolve(r *http.Request) string {
	remote := r.RemoteAddr
	if host, _, err := net.SplitHostPort(remote); err == nil {
		remote = host
	}

	if !c.isTrusted(remote) {
		return remote
	}

	hops := strings.Split(r.Header.Get(constant.RequestHeaderForwardedFor), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == constant.Empty {
			continue
		}

		if !c.isTrusted(hop) {
			return hop
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); realIP != constant.Empty {
		return realIP
	}

	return remote
}
