package entities

// DefaultDependencyRules returns the built-in EAP 7 to EAP 8 dependency
// mapping. A fresh map is returned on every call.
func DefaultDependencyRules() map[string]Rule {
	return map[string]Rule{
		// BOMs
		"org.jboss.bom:jboss-eap-jakartaee8": {
			NewArtifact: "org.jboss.bom:jboss-eap-ee",
			NewVersion:  "8.0.0.GA",
		},
		"org.jboss.bom:jboss-eap-jakartaee8-with-tools": {
			NewArtifact: "org.jboss.bom:jboss-eap-ee-with-tools",
			NewVersion:  "8.0.0.GA",
		},

		// JBoss spec APIs
		"org.jboss.spec.javax.ejb:jboss-ejb-api_3.2_spec": {
			NewArtifact: "jakarta.ejb:jakarta.ejb-api",
			NewVersion:  "4.0.1",
		},
		"org.jboss.spec.javax.servlet:jboss-servlet-api_4.0_spec": {
			NewArtifact: "jakarta.servlet:jakarta.servlet-api",
			NewVersion:  "6.0.0",
		},
		"org.jboss.spec.javax.ws.rs:jboss-jaxrs-api_2.1_spec": {
			NewArtifact: "jakarta.ws.rs:jakarta.ws.rs-api",
			NewVersion:  "3.1.0",
		},
		"org.jboss.spec.javax.xml.bind:jboss-jaxb-api_2.3_spec": {
			NewArtifact: "jakarta.xml.bind:jakarta.xml.bind-api",
			NewVersion:  "4.0.0",
		},
		"org.jboss.spec.javax.faces:jboss-jsf-api_2.3_spec": {
			NewArtifact: "jakarta.faces:jakarta.faces-api",
			NewVersion:  "4.0.1",
		},
		"org.jboss.spec.javax.annotation:jboss-annotations-api_1.3_spec": {
			NewArtifact: "jakarta.annotation:jakarta.annotation-api",
			NewVersion:  "2.1.1",
		},
		"org.jboss.spec.javax.transaction:jboss-transaction-api_1.3_spec": {
			NewArtifact: "jakarta.transaction:jakarta.transaction-api",
			NewVersion:  "2.0.1",
		},
		"org.jboss.spec.javax.json:jboss-json-api_1.1_spec": {
			NewArtifact: "jakarta.json:jakarta.json-api",
			NewVersion:  "2.1.1",
		},

		// Hibernate
		"org.hibernate:hibernate-core": {
			NewVersion: "6.2.0.Final",
		},
		"org.hibernate:hibernate-entitymanager": {
			NewArtifact: "org.hibernate.orm:hibernate-core",
			NewVersion:  "6.2.0.Final",
		},
		"org.hibernate.validator:hibernate-validator": {
			NewVersion: "8.0.0.Final",
		},

		// RESTEasy
		"org.jboss.resteasy:resteasy-jaxrs": {
			NewArtifact: "org.jboss.resteasy:resteasy-core",
			NewVersion:  "6.2.0.Final",
		},
		"org.jboss.resteasy:resteasy-client": {
			NewArtifact: "org.jboss.resteasy:resteasy-client-api",
			NewVersion:  "6.2.0.Final",
		},

		// Other
		"org.jboss.logging:jboss-logging": {
			NewVersion: "3.5.0.Final",
		},
		"org.wildfly.security:wildfly-elytron": {
			NewVersion: "2.0.0.Final",
		},
		"com.sun.mail:javax.mail": {
			NewArtifact: "jakarta.mail:jakarta.mail-api",
			NewVersion:  "2.1.0",
		},
		"javax.validation:validation-api": {
			NewArtifact: "jakarta.validation:jakarta.validation-api",
			NewVersion:  "3.0.2",
		},
	}
}

// DefaultManagedDependencies returns the coordinates whose versions the
// EAP 8 BOMs supply.
func DefaultManagedDependencies() []string {
	return []string{
		// Jakarta EE APIs
		"jakarta.ejb:jakarta.ejb-api",
		"jakarta.servlet:jakarta.servlet-api",
		"jakarta.persistence:jakarta.persistence-api",
		"jakarta.validation:jakarta.validation-api",
		"jakarta.ws.rs:jakarta.ws.rs-api",
		"jakarta.enterprise:jakarta.enterprise.cdi-api",
		"jakarta.inject:jakarta.inject-api",
		"jakarta.faces:jakarta.faces-api",
		"jakarta.json:jakarta.json-api",
		"jakarta.xml.bind:jakarta.xml.bind-api",
		"jakarta.annotation:jakarta.annotation-api",
		"jakarta.transaction:jakarta.transaction-api",
		"jakarta.websocket:jakarta.websocket-api",
		"jakarta.jms:jakarta.jms-api",

		// Hibernate
		"org.hibernate.orm:hibernate-core",
		"org.hibernate:hibernate-core",
		"org.hibernate.validator:hibernate-validator",

		// RESTEasy
		"org.jboss.resteasy:resteasy-core",
		"org.jboss.resteasy:resteasy-client-api",

		// JBoss / WildFly
		"org.jboss.logging:jboss-logging",
		"org.wildfly.security:wildfly-elytron",
	}
}

// DefaultJavaxPackages returns the javax packages that moved to jakarta.
func DefaultJavaxPackages() []string {
	return []string{
		"javax.activation",
		"javax.annotation",
		"javax.batch",
		"javax.decorator",
		"javax.ejb",
		"javax.el",
		"javax.enterprise",
		"javax.faces",
		"javax.inject",
		"javax.interceptor",
		"javax.jms",
		"javax.json",
		"javax.jws",
		"javax.mail",
		"javax.persistence",
		"javax.resource",
		"javax.security.auth.message",
		"javax.security.enterprise",
		"javax.security.jacc",
		"javax.servlet",
		"javax.transaction",
		"javax.validation",
		"javax.websocket",
		"javax.ws.rs",
		"javax.xml.bind",
		"javax.xml.soap",
		"javax.xml.ws",
	}
}
